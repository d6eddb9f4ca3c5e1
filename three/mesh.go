// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Mesh is a renderable object pairing exactly one [Geometry] with
// exactly one [Material], both held by shared reference.
type Mesh struct {
	Object3d

	Geometry Geometry
	Material Material
}

// NewMesh returns a new [Mesh] with the given geometry and material.
func NewMesh(geom Geometry, mat Material) *Mesh {
	m := &Mesh{}
	m.Defaults()
	m.initView("MeshView")
	m.initModel("MeshModel")
	m.Geometry = geom
	m.Material = mat
	return m
}

// SetGeometry sets [Mesh.Geometry] and records the change.
func (m *Mesh) SetGeometry(v Geometry) *Mesh {
	m.Geometry = v
	m.Send("geometry", v)
	return m
}

// SetMaterial sets [Mesh.Material] and records the change.
func (m *Mesh) SetMaterial(v Material) *Mesh {
	m.Material = v
	m.Send("material", v)
	return m
}

// Line renders a mesh's vertices as connected or separate line
// segments, and restricts the material to a [LineMaterial].
type Line struct {
	Mesh

	Type LineType
}

// NewLine returns a new [Line] with the given geometry and line material.
func NewLine(geom Geometry, mat LineMaterial) *Line {
	ln := &Line{}
	ln.Defaults()
	ln.initView("LineView")
	ln.initModel("MeshModel")
	ln.Geometry = geom
	ln.Material = mat
	return ln
}

// SetType sets [Line.Type] and records the change.
func (ln *Line) SetType(v LineType) *Line {
	ln.Type = v
	ln.Send("type", v.String())
	return ln
}

// SetLineMaterial sets the material, which must be a [LineMaterial],
// and records the change.
func (ln *Line) SetLineMaterial(v LineMaterial) *Line {
	ln.Material = v
	ln.Send("material", v)
	return ln
}

// Sprite is a screen-aligned billboard with a material.
type Sprite struct {
	Object3d

	Material Material

	// ScaleToTexture scales the sprite to the dimensions of its
	// material's texture.
	ScaleToTexture bool
}

// NewSprite returns a new [Sprite] with default field values.
func NewSprite() *Sprite {
	s := &Sprite{}
	s.Defaults()
	s.initView("SpriteView")
	s.initModel("SpriteModel")
	return s
}

// SetMaterial sets [Sprite.Material] and records the change.
func (s *Sprite) SetMaterial(v Material) *Sprite {
	s.Material = v
	s.Send("material", v)
	return s
}

// SetScaleToTexture sets [Sprite.ScaleToTexture] and records the change.
func (s *Sprite) SetScaleToTexture(v bool) *Sprite {
	s.ScaleToTexture = v
	s.Send("scaleToTexture", v)
	return s
}

// SurfaceGrid draws a line mesh overlaying a [SurfaceGeometry] height
// field.
type SurfaceGrid struct {
	Mesh
}

// NewSurfaceGrid returns a new [SurfaceGrid] over the given height
// field with the given line material.
func NewSurfaceGrid(geom *SurfaceGeometry, mat LineMaterial) *SurfaceGrid {
	sg := &SurfaceGrid{}
	sg.Defaults()
	sg.initView("SurfaceGridView")
	sg.initModel("MeshModel")
	sg.Geometry = geom
	sg.Material = mat
	return sg
}

// SetSurface sets the height-field geometry and records the change.
func (sg *SurfaceGrid) SetSurface(v *SurfaceGeometry) *SurfaceGrid {
	sg.Geometry = v
	sg.Send("geometry", v)
	return sg
}

// SetLineMaterial sets the material, which must be a [LineMaterial],
// and records the change.
func (sg *SurfaceGrid) SetLineMaterial(v LineMaterial) *SurfaceGrid {
	sg.Material = v
	sg.Send("material", v)
	return sg
}
