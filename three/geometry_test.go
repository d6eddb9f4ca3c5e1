// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"testing"

	"github.com/solomonvimal/pythreejs/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryDefaults(t *testing.T) {
	sp := NewSphereGeometry()
	assert.Equal(t, float32(1), sp.Radius)
	assert.Equal(t, "SphereGeometryView", sp.ViewName)

	ci := NewCircleGeometry()
	assert.InDelta(t, 2*math32.Pi, ci.ThetaLength, tol)

	la := NewLatheGeometry()
	assert.Equal(t, 12, la.Segments)
	assert.InDelta(t, 2*math32.Pi, la.PhiLength, tol)

	tu := NewTubeGeometry()
	assert.Equal(t, 64, tu.Segments)

	to := NewTorusGeometry()
	assert.InDelta(t, 2*math32.Pi, to.Arc, tol)

	tk := NewTorusKnotGeometry()
	assert.Equal(t, float32(2), tk.P)
	assert.Equal(t, float32(3), tk.Q)

	ri := NewRingGeometry()
	assert.Equal(t, float32(1), ri.InnerRadius)
	assert.Equal(t, float32(3), ri.OuterRadius)

	pa := NewParametricGeometry()
	assert.Equal(t, 105, pa.Slices)
	assert.Equal(t, 105, pa.Stacks)
}

func TestSurfaceGeometryDefaults(t *testing.T) {
	g := NewSurfaceGeometry()
	assert.Len(t, g.Z, 100)
	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 10, g.Height)
	assert.Equal(t, 10, g.WidthSegments)
	assert.Equal(t, 10, g.HeightSegments)

	g.SetWidthSegments(20)
	g.SetHeightSegments(30)
	ch := g.Changes()
	require.Len(t, ch, 2)
	assert.Equal(t, "width_segments", ch[0].Field)
	assert.Equal(t, "height_segments", ch[1].Field)
}

func TestFaceGeometryWireNames(t *testing.T) {
	g := NewFaceGeometry()
	g.SetVertices([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0})
	g.SetFace3([]int{0, 1, 2})
	g.SetFaceN([][]int{{0, 1, 2, 3, 4}})
	ch := g.Changes()
	require.Len(t, ch, 3)
	assert.Equal(t, "vertices", ch[0].Field)
	assert.Equal(t, "face3", ch[1].Field)
	assert.Equal(t, "facen", ch[2].Field)
}

func TestPlainGeometry(t *testing.T) {
	g := NewPlainGeometry()
	assert.Equal(t, "PlainGeometryView", g.ViewName)
	g.SetVertices([]math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1)})
	ch := g.Changes()
	require.Len(t, ch, 1)
	assert.Equal(t, "vertices", ch[0].Field)
}

func TestGeometryInterface(t *testing.T) {
	// Every variant plugs into a Mesh through the Geometry interface.
	for _, g := range []Geometry{
		NewPlainGeometry(), NewSphereGeometry(), NewCylinderGeometry(),
		NewBoxGeometry(), NewCircleGeometry(), NewLatheGeometry(),
		NewTubeGeometry(), NewIcosahedronGeometry(), NewOctahedronGeometry(),
		NewTetrahedronGeometry(), NewPlaneGeometry(), NewTorusGeometry(),
		NewTorusKnotGeometry(), NewPolyhedronGeometry(), NewRingGeometry(),
		NewSurfaceGeometry(), NewFaceGeometry(), NewParametricGeometry(),
	} {
		m := NewMesh(g, NewBasicMaterial())
		assert.Same(t, g.AsGeometryBase(), m.Geometry.AsGeometryBase())
		assert.NotEmpty(t, g.AsBase().ViewName)
	}
}
