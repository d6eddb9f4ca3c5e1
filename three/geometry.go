// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"github.com/solomonvimal/pythreejs/colors"
	"github.com/solomonvimal/pythreejs/math32"
)

// Geometry is the interface for all shape descriptors. Geometries are
// pure value schemas: the front end generates the actual vertex data.
type Geometry interface {
	Entity

	// AsGeometryBase returns the [GeometryBase] of this geometry.
	AsGeometryBase() *GeometryBase
}

// GeometryBase provides the core implementation of the [Geometry] interface.
type GeometryBase struct {
	Base
}

func (g *GeometryBase) AsGeometryBase() *GeometryBase {
	return g
}

// initGeometry sets up the view identification for a geometry variant.
func (g *GeometryBase) initGeometry(viewName string) {
	g.initView(viewName)
}

// PlainGeometry is an explicit list of vertices, per-vertex colors,
// and faces given as vertex index lists.
type PlainGeometry struct {
	GeometryBase

	Vertices []math32.Vector3
	Colors   []colors.Color
	Faces    [][]float32
}

// NewPlainGeometry returns a new [PlainGeometry] with default field values.
func NewPlainGeometry() *PlainGeometry {
	g := &PlainGeometry{}
	g.initGeometry("PlainGeometryView")
	return g
}

// SetVertices sets [PlainGeometry.Vertices] and records the change.
func (g *PlainGeometry) SetVertices(v []math32.Vector3) *PlainGeometry {
	g.Vertices = v
	g.Send("vertices", v)
	return g
}

// SetColors sets [PlainGeometry.Colors] and records the change.
func (g *PlainGeometry) SetColors(v []colors.Color) *PlainGeometry {
	g.Colors = v
	g.Send("colors", v)
	return g
}

// SetFaces sets [PlainGeometry.Faces] and records the change.
func (g *PlainGeometry) SetFaces(v [][]float32) *PlainGeometry {
	g.Faces = v
	g.Send("faces", v)
	return g
}

// SphereGeometry is a sphere of the given radius.
type SphereGeometry struct {
	GeometryBase

	Radius float32
}

// NewSphereGeometry returns a new [SphereGeometry] with default field values.
func NewSphereGeometry() *SphereGeometry {
	g := &SphereGeometry{Radius: 1}
	g.initGeometry("SphereGeometryView")
	return g
}

// SetRadius sets [SphereGeometry.Radius] and records the change.
func (g *SphereGeometry) SetRadius(v float32) *SphereGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// CylinderGeometry is a cylinder or truncated cone.
type CylinderGeometry struct {
	GeometryBase

	RadiusTop      float32
	RadiusBottom   float32
	Height         float32
	RadiusSegments float32
	HeightSegments float32
	OpenEnded      bool
}

// NewCylinderGeometry returns a new [CylinderGeometry] with default field values.
func NewCylinderGeometry() *CylinderGeometry {
	g := &CylinderGeometry{RadiusTop: 1, RadiusBottom: 1, Height: 1, RadiusSegments: 20, HeightSegments: 1}
	g.initGeometry("CylinderGeometryView")
	return g
}

// SetRadiusTop sets [CylinderGeometry.RadiusTop] and records the change.
func (g *CylinderGeometry) SetRadiusTop(v float32) *CylinderGeometry {
	g.RadiusTop = v
	g.Send("radiusTop", v)
	return g
}

// SetRadiusBottom sets [CylinderGeometry.RadiusBottom] and records the change.
func (g *CylinderGeometry) SetRadiusBottom(v float32) *CylinderGeometry {
	g.RadiusBottom = v
	g.Send("radiusBottom", v)
	return g
}

// SetHeight sets [CylinderGeometry.Height] and records the change.
func (g *CylinderGeometry) SetHeight(v float32) *CylinderGeometry {
	g.Height = v
	g.Send("height", v)
	return g
}

// SetRadiusSegments sets [CylinderGeometry.RadiusSegments] and records the change.
func (g *CylinderGeometry) SetRadiusSegments(v float32) *CylinderGeometry {
	g.RadiusSegments = v
	g.Send("radiusSegments", v)
	return g
}

// SetHeightSegments sets [CylinderGeometry.HeightSegments] and records the change.
func (g *CylinderGeometry) SetHeightSegments(v float32) *CylinderGeometry {
	g.HeightSegments = v
	g.Send("heightSegments", v)
	return g
}

// SetOpenEnded sets [CylinderGeometry.OpenEnded] and records the change.
func (g *CylinderGeometry) SetOpenEnded(v bool) *CylinderGeometry {
	g.OpenEnded = v
	g.Send("openEnded", v)
	return g
}

// BoxGeometry is an axis-aligned box.
type BoxGeometry struct {
	GeometryBase

	Width          float32
	Height         float32
	Depth          float32
	WidthSegments  float32
	HeightSegments float32
	DepthSegments  float32
}

// NewBoxGeometry returns a new [BoxGeometry] with default field values.
func NewBoxGeometry() *BoxGeometry {
	g := &BoxGeometry{Width: 1, Height: 1, Depth: 1, WidthSegments: 1, HeightSegments: 1, DepthSegments: 1}
	g.initGeometry("BoxGeometryView")
	return g
}

// SetWidth sets [BoxGeometry.Width] and records the change.
func (g *BoxGeometry) SetWidth(v float32) *BoxGeometry {
	g.Width = v
	g.Send("width", v)
	return g
}

// SetHeight sets [BoxGeometry.Height] and records the change.
func (g *BoxGeometry) SetHeight(v float32) *BoxGeometry {
	g.Height = v
	g.Send("height", v)
	return g
}

// SetDepth sets [BoxGeometry.Depth] and records the change.
func (g *BoxGeometry) SetDepth(v float32) *BoxGeometry {
	g.Depth = v
	g.Send("depth", v)
	return g
}

// SetWidthSegments sets [BoxGeometry.WidthSegments] and records the change.
func (g *BoxGeometry) SetWidthSegments(v float32) *BoxGeometry {
	g.WidthSegments = v
	g.Send("widthSegments", v)
	return g
}

// SetHeightSegments sets [BoxGeometry.HeightSegments] and records the change.
func (g *BoxGeometry) SetHeightSegments(v float32) *BoxGeometry {
	g.HeightSegments = v
	g.Send("heightSegments", v)
	return g
}

// SetDepthSegments sets [BoxGeometry.DepthSegments] and records the change.
func (g *BoxGeometry) SetDepthSegments(v float32) *BoxGeometry {
	g.DepthSegments = v
	g.Send("depthSegments", v)
	return g
}

// CircleGeometry is a flat disc or arc segment.
type CircleGeometry struct {
	GeometryBase

	Radius      float32
	Segments    float32
	ThetaStart  float32
	ThetaLength float32
}

// NewCircleGeometry returns a new [CircleGeometry] with default field values.
func NewCircleGeometry() *CircleGeometry {
	g := &CircleGeometry{Radius: 1, Segments: 8, ThetaLength: 2 * math32.Pi}
	g.initGeometry("CircleGeometryView")
	return g
}

// SetRadius sets [CircleGeometry.Radius] and records the change.
func (g *CircleGeometry) SetRadius(v float32) *CircleGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetSegments sets [CircleGeometry.Segments] and records the change.
func (g *CircleGeometry) SetSegments(v float32) *CircleGeometry {
	g.Segments = v
	g.Send("segments", v)
	return g
}

// SetThetaStart sets [CircleGeometry.ThetaStart] and records the change.
func (g *CircleGeometry) SetThetaStart(v float32) *CircleGeometry {
	g.ThetaStart = v
	g.Send("thetaStart", v)
	return g
}

// SetThetaLength sets [CircleGeometry.ThetaLength] and records the change.
func (g *CircleGeometry) SetThetaLength(v float32) *CircleGeometry {
	g.ThetaLength = v
	g.Send("thetaLength", v)
	return g
}

// LatheGeometry revolves a profile of points around an axis.
type LatheGeometry struct {
	GeometryBase

	Points    []math32.Vector3
	Segments  int
	PhiStart  float32
	PhiLength float32
}

// NewLatheGeometry returns a new [LatheGeometry] with default field values.
func NewLatheGeometry() *LatheGeometry {
	g := &LatheGeometry{Segments: 12, PhiLength: 2 * math32.Pi}
	g.initGeometry("LatheGeometryView")
	return g
}

// SetPoints sets [LatheGeometry.Points] and records the change.
func (g *LatheGeometry) SetPoints(v []math32.Vector3) *LatheGeometry {
	g.Points = v
	g.Send("points", v)
	return g
}

// SetSegments sets [LatheGeometry.Segments] and records the change.
func (g *LatheGeometry) SetSegments(v int) *LatheGeometry {
	g.Segments = v
	g.Send("segments", v)
	return g
}

// SetPhiStart sets [LatheGeometry.PhiStart] and records the change.
func (g *LatheGeometry) SetPhiStart(v float32) *LatheGeometry {
	g.PhiStart = v
	g.Send("phiStart", v)
	return g
}

// SetPhiLength sets [LatheGeometry.PhiLength] and records the change.
func (g *LatheGeometry) SetPhiLength(v float32) *LatheGeometry {
	g.PhiLength = v
	g.Send("phiLength", v)
	return g
}

// TubeGeometry extrudes a circular cross-section along a path.
type TubeGeometry struct {
	GeometryBase

	Path           []math32.Vector3
	Segments       int
	Radius         float32
	RadialSegments float32
	Closed         bool
}

// NewTubeGeometry returns a new [TubeGeometry] with default field values.
func NewTubeGeometry() *TubeGeometry {
	g := &TubeGeometry{Segments: 64, Radius: 1, RadialSegments: 8}
	g.initGeometry("TubeGeometryView")
	return g
}

// SetPath sets [TubeGeometry.Path] and records the change.
func (g *TubeGeometry) SetPath(v []math32.Vector3) *TubeGeometry {
	g.Path = v
	g.Send("path", v)
	return g
}

// SetSegments sets [TubeGeometry.Segments] and records the change.
func (g *TubeGeometry) SetSegments(v int) *TubeGeometry {
	g.Segments = v
	g.Send("segments", v)
	return g
}

// SetRadius sets [TubeGeometry.Radius] and records the change.
func (g *TubeGeometry) SetRadius(v float32) *TubeGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetRadialSegments sets [TubeGeometry.RadialSegments] and records the change.
func (g *TubeGeometry) SetRadialSegments(v float32) *TubeGeometry {
	g.RadialSegments = v
	g.Send("radialSegments", v)
	return g
}

// SetClosed sets [TubeGeometry.Closed] and records the change.
func (g *TubeGeometry) SetClosed(v bool) *TubeGeometry {
	g.Closed = v
	g.Send("closed", v)
	return g
}

// polyGeometry is the radius + detail parameter pair shared by the
// platonic-solid geometries.
type polyGeometry struct {
	GeometryBase

	Radius float32
	Detail float32
}

// IcosahedronGeometry is a 20-sided platonic solid.
type IcosahedronGeometry struct {
	polyGeometry
}

// NewIcosahedronGeometry returns a new [IcosahedronGeometry] with default field values.
func NewIcosahedronGeometry() *IcosahedronGeometry {
	g := &IcosahedronGeometry{}
	g.Radius = 1
	g.initGeometry("IcosahedronGeometryView")
	return g
}

// SetRadius sets the radius and records the change.
func (g *IcosahedronGeometry) SetRadius(v float32) *IcosahedronGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetDetail sets the subdivision detail and records the change.
func (g *IcosahedronGeometry) SetDetail(v float32) *IcosahedronGeometry {
	g.Detail = v
	g.Send("detail", v)
	return g
}

// OctahedronGeometry is an 8-sided platonic solid.
type OctahedronGeometry struct {
	polyGeometry
}

// NewOctahedronGeometry returns a new [OctahedronGeometry] with default field values.
func NewOctahedronGeometry() *OctahedronGeometry {
	g := &OctahedronGeometry{}
	g.Radius = 1
	g.initGeometry("OctahedronGeometryView")
	return g
}

// SetRadius sets the radius and records the change.
func (g *OctahedronGeometry) SetRadius(v float32) *OctahedronGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetDetail sets the subdivision detail and records the change.
func (g *OctahedronGeometry) SetDetail(v float32) *OctahedronGeometry {
	g.Detail = v
	g.Send("detail", v)
	return g
}

// TetrahedronGeometry is a 4-sided platonic solid.
type TetrahedronGeometry struct {
	polyGeometry
}

// NewTetrahedronGeometry returns a new [TetrahedronGeometry] with default field values.
func NewTetrahedronGeometry() *TetrahedronGeometry {
	g := &TetrahedronGeometry{}
	g.Radius = 1
	g.initGeometry("TetrahedronGeometryView")
	return g
}

// SetRadius sets the radius and records the change.
func (g *TetrahedronGeometry) SetRadius(v float32) *TetrahedronGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetDetail sets the subdivision detail and records the change.
func (g *TetrahedronGeometry) SetDetail(v float32) *TetrahedronGeometry {
	g.Detail = v
	g.Send("detail", v)
	return g
}

// PlaneGeometry is a flat rectangle.
type PlaneGeometry struct {
	GeometryBase

	Width          float32
	Height         float32
	WidthSegments  float32
	HeightSegments float32
}

// NewPlaneGeometry returns a new [PlaneGeometry] with default field values.
func NewPlaneGeometry() *PlaneGeometry {
	g := &PlaneGeometry{Width: 1, Height: 1, WidthSegments: 1, HeightSegments: 1}
	g.initGeometry("PlaneGeometryView")
	return g
}

// SetWidth sets [PlaneGeometry.Width] and records the change.
func (g *PlaneGeometry) SetWidth(v float32) *PlaneGeometry {
	g.Width = v
	g.Send("width", v)
	return g
}

// SetHeight sets [PlaneGeometry.Height] and records the change.
func (g *PlaneGeometry) SetHeight(v float32) *PlaneGeometry {
	g.Height = v
	g.Send("height", v)
	return g
}

// SetWidthSegments sets [PlaneGeometry.WidthSegments] and records the change.
func (g *PlaneGeometry) SetWidthSegments(v float32) *PlaneGeometry {
	g.WidthSegments = v
	g.Send("widthSegments", v)
	return g
}

// SetHeightSegments sets [PlaneGeometry.HeightSegments] and records the change.
func (g *PlaneGeometry) SetHeightSegments(v float32) *PlaneGeometry {
	g.HeightSegments = v
	g.Send("heightSegments", v)
	return g
}

// TorusGeometry is a torus (doughnut) or partial arc of one.
type TorusGeometry struct {
	GeometryBase

	Radius          float32
	Tube            float32
	RadialSegments  float32
	TubularSegments float32
	Arc             float32
}

// NewTorusGeometry returns a new [TorusGeometry] with default field values.
func NewTorusGeometry() *TorusGeometry {
	g := &TorusGeometry{Radius: 1, Tube: 1, RadialSegments: 1, TubularSegments: 1, Arc: 2 * math32.Pi}
	g.initGeometry("TorusGeometryView")
	return g
}

// SetRadius sets [TorusGeometry.Radius] and records the change.
func (g *TorusGeometry) SetRadius(v float32) *TorusGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetTube sets [TorusGeometry.Tube] and records the change.
func (g *TorusGeometry) SetTube(v float32) *TorusGeometry {
	g.Tube = v
	g.Send("tube", v)
	return g
}

// SetRadialSegments sets [TorusGeometry.RadialSegments] and records the change.
func (g *TorusGeometry) SetRadialSegments(v float32) *TorusGeometry {
	g.RadialSegments = v
	g.Send("radialSegments", v)
	return g
}

// SetTubularSegments sets [TorusGeometry.TubularSegments] and records the change.
func (g *TorusGeometry) SetTubularSegments(v float32) *TorusGeometry {
	g.TubularSegments = v
	g.Send("tubularSegments", v)
	return g
}

// SetArc sets [TorusGeometry.Arc] and records the change.
func (g *TorusGeometry) SetArc(v float32) *TorusGeometry {
	g.Arc = v
	g.Send("arc", v)
	return g
}

// TorusKnotGeometry is a (p, q) torus knot.
type TorusKnotGeometry struct {
	GeometryBase

	Radius          float32
	Tube            float32
	RadialSegments  float32
	TubularSegments float32
	P               float32
	Q               float32
	HeightScale     float32
}

// NewTorusKnotGeometry returns a new [TorusKnotGeometry] with default field values.
func NewTorusKnotGeometry() *TorusKnotGeometry {
	g := &TorusKnotGeometry{Radius: 1, Tube: 1, RadialSegments: 10, TubularSegments: 10, P: 2, Q: 3, HeightScale: 1}
	g.initGeometry("TorusKnotGeometryView")
	return g
}

// SetRadius sets [TorusKnotGeometry.Radius] and records the change.
func (g *TorusKnotGeometry) SetRadius(v float32) *TorusKnotGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetTube sets [TorusKnotGeometry.Tube] and records the change.
func (g *TorusKnotGeometry) SetTube(v float32) *TorusKnotGeometry {
	g.Tube = v
	g.Send("tube", v)
	return g
}

// SetRadialSegments sets [TorusKnotGeometry.RadialSegments] and records the change.
func (g *TorusKnotGeometry) SetRadialSegments(v float32) *TorusKnotGeometry {
	g.RadialSegments = v
	g.Send("radialSegments", v)
	return g
}

// SetTubularSegments sets [TorusKnotGeometry.TubularSegments] and records the change.
func (g *TorusKnotGeometry) SetTubularSegments(v float32) *TorusKnotGeometry {
	g.TubularSegments = v
	g.Send("tubularSegments", v)
	return g
}

// SetP sets [TorusKnotGeometry.P] and records the change.
func (g *TorusKnotGeometry) SetP(v float32) *TorusKnotGeometry {
	g.P = v
	g.Send("p", v)
	return g
}

// SetQ sets [TorusKnotGeometry.Q] and records the change.
func (g *TorusKnotGeometry) SetQ(v float32) *TorusKnotGeometry {
	g.Q = v
	g.Send("q", v)
	return g
}

// SetHeightScale sets [TorusKnotGeometry.HeightScale] and records the change.
func (g *TorusKnotGeometry) SetHeightScale(v float32) *TorusKnotGeometry {
	g.HeightScale = v
	g.Send("heightScale", v)
	return g
}

// PolyhedronGeometry is an arbitrary polyhedron projected onto a sphere.
type PolyhedronGeometry struct {
	GeometryBase

	Radius   float32
	Detail   int
	Vertices [][]float32
	Faces    [][]int
}

// NewPolyhedronGeometry returns a new [PolyhedronGeometry] with default field values.
func NewPolyhedronGeometry() *PolyhedronGeometry {
	g := &PolyhedronGeometry{Radius: 1}
	g.initGeometry("PolyhedronGeometryView")
	return g
}

// SetRadius sets [PolyhedronGeometry.Radius] and records the change.
func (g *PolyhedronGeometry) SetRadius(v float32) *PolyhedronGeometry {
	g.Radius = v
	g.Send("radius", v)
	return g
}

// SetDetail sets [PolyhedronGeometry.Detail] and records the change.
func (g *PolyhedronGeometry) SetDetail(v int) *PolyhedronGeometry {
	g.Detail = v
	g.Send("detail", v)
	return g
}

// SetVertices sets [PolyhedronGeometry.Vertices] and records the change.
func (g *PolyhedronGeometry) SetVertices(v [][]float32) *PolyhedronGeometry {
	g.Vertices = v
	g.Send("vertices", v)
	return g
}

// SetFaces sets [PolyhedronGeometry.Faces] and records the change.
func (g *PolyhedronGeometry) SetFaces(v [][]int) *PolyhedronGeometry {
	g.Faces = v
	g.Send("faces", v)
	return g
}

// RingGeometry is a flat annulus or partial arc of one.
type RingGeometry struct {
	GeometryBase

	InnerRadius   float32
	OuterRadius   float32
	ThetaSegments int
	PhiSegments   int
	ThetaStart    float32
	ThetaLength   float32
}

// NewRingGeometry returns a new [RingGeometry] with default field values.
func NewRingGeometry() *RingGeometry {
	g := &RingGeometry{InnerRadius: 1, OuterRadius: 3, ThetaSegments: 8, PhiSegments: 8, ThetaLength: 2 * math32.Pi}
	g.initGeometry("RingGeometryView")
	return g
}

// SetInnerRadius sets [RingGeometry.InnerRadius] and records the change.
func (g *RingGeometry) SetInnerRadius(v float32) *RingGeometry {
	g.InnerRadius = v
	g.Send("innerRadius", v)
	return g
}

// SetOuterRadius sets [RingGeometry.OuterRadius] and records the change.
func (g *RingGeometry) SetOuterRadius(v float32) *RingGeometry {
	g.OuterRadius = v
	g.Send("outerRadius", v)
	return g
}

// SetThetaSegments sets [RingGeometry.ThetaSegments] and records the change.
func (g *RingGeometry) SetThetaSegments(v int) *RingGeometry {
	g.ThetaSegments = v
	g.Send("thetaSegments", v)
	return g
}

// SetPhiSegments sets [RingGeometry.PhiSegments] and records the change.
func (g *RingGeometry) SetPhiSegments(v int) *RingGeometry {
	g.PhiSegments = v
	g.Send("phiSegments", v)
	return g
}

// SetThetaStart sets [RingGeometry.ThetaStart] and records the change.
func (g *RingGeometry) SetThetaStart(v float32) *RingGeometry {
	g.ThetaStart = v
	g.Send("thetaStart", v)
	return g
}

// SetThetaLength sets [RingGeometry.ThetaLength] and records the change.
func (g *RingGeometry) SetThetaLength(v float32) *RingGeometry {
	g.ThetaLength = v
	g.Send("thetaLength", v)
	return g
}

// SurfaceGeometry is a regular grid of heights: Z holds
// Width x Height height values in row-major order.
type SurfaceGeometry struct {
	GeometryBase

	Z              []float32
	Width          int
	Height         int
	WidthSegments  int
	HeightSegments int
}

// NewSurfaceGeometry returns a new [SurfaceGeometry] with default
// field values: a flat 10x10 grid.
func NewSurfaceGeometry() *SurfaceGeometry {
	g := &SurfaceGeometry{Z: make([]float32, 100), Width: 10, Height: 10, WidthSegments: 10, HeightSegments: 10}
	g.initGeometry("SurfaceGeometryView")
	return g
}

// SetZ sets the height values and records the change.
func (g *SurfaceGeometry) SetZ(v []float32) *SurfaceGeometry {
	g.Z = v
	g.Send("z", v)
	return g
}

// SetWidth sets [SurfaceGeometry.Width] and records the change.
func (g *SurfaceGeometry) SetWidth(v int) *SurfaceGeometry {
	g.Width = v
	g.Send("width", v)
	return g
}

// SetHeight sets [SurfaceGeometry.Height] and records the change.
func (g *SurfaceGeometry) SetHeight(v int) *SurfaceGeometry {
	g.Height = v
	g.Send("height", v)
	return g
}

// SetWidthSegments sets [SurfaceGeometry.WidthSegments] and records the change.
func (g *SurfaceGeometry) SetWidthSegments(v int) *SurfaceGeometry {
	g.WidthSegments = v
	g.Send("width_segments", v)
	return g
}

// SetHeightSegments sets [SurfaceGeometry.HeightSegments] and records the change.
func (g *SurfaceGeometry) SetHeightSegments(v int) *SurfaceGeometry {
	g.HeightSegments = v
	g.Send("height_segments", v)
	return g
}

// FaceGeometry is a flat list of vertex coordinates plus face index
// lists: Face3 holds triangles as consecutive vertex-index triples,
// Face4 holds quads as consecutive quadruples, and FaceN holds
// arbitrary polygons.
type FaceGeometry struct {
	GeometryBase

	// Vertices is the flat coordinate list: x0, y0, z0, x1, y1, z1, ...
	Vertices []float32

	// Face3 is the triangle index list: v0, v1, v2, v0, v1, v2, ...
	Face3 []int

	// Face4 is the quad index list: v0, v1, v2, v3, ...
	Face4 []int

	// FaceN is the arbitrary polygon index list.
	FaceN [][]int
}

// NewFaceGeometry returns a new [FaceGeometry] with default field values.
func NewFaceGeometry() *FaceGeometry {
	g := &FaceGeometry{}
	g.initGeometry("FaceGeometryView")
	return g
}

// SetVertices sets [FaceGeometry.Vertices] and records the change.
func (g *FaceGeometry) SetVertices(v []float32) *FaceGeometry {
	g.Vertices = v
	g.Send("vertices", v)
	return g
}

// SetFace3 sets [FaceGeometry.Face3] and records the change.
func (g *FaceGeometry) SetFace3(v []int) *FaceGeometry {
	g.Face3 = v
	g.Send("face3", v)
	return g
}

// SetFace4 sets [FaceGeometry.Face4] and records the change.
func (g *FaceGeometry) SetFace4(v []int) *FaceGeometry {
	g.Face4 = v
	g.Send("face4", v)
	return g
}

// SetFaceN sets [FaceGeometry.FaceN] and records the change.
func (g *FaceGeometry) SetFaceN(v [][]int) *FaceGeometry {
	g.FaceN = v
	g.Send("facen", v)
	return g
}

// ParametricGeometry evaluates a front-end function source over a
// (u, v) parameter grid.
type ParametricGeometry struct {
	GeometryBase

	// Func is the source of the front-end function evaluated per grid point.
	Func   string
	Slices int
	Stacks int
}

// NewParametricGeometry returns a new [ParametricGeometry] with default field values.
func NewParametricGeometry() *ParametricGeometry {
	g := &ParametricGeometry{Slices: 105, Stacks: 105}
	g.initGeometry("ParametricGeometryView")
	return g
}

// SetFunc sets [ParametricGeometry.Func] and records the change.
func (g *ParametricGeometry) SetFunc(v string) *ParametricGeometry {
	g.Func = v
	g.Send("func", v)
	return g
}

// SetSlices sets [ParametricGeometry.Slices] and records the change.
func (g *ParametricGeometry) SetSlices(v int) *ParametricGeometry {
	g.Slices = v
	g.Send("slices", v)
	return g
}

// SetStacks sets [ParametricGeometry.Stacks] and records the change.
func (g *ParametricGeometry) SetStacks(v int) *ParametricGeometry {
	g.Stacks = v
	g.Send("stacks", v)
	return g
}
