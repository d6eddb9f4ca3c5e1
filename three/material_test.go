// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialBaseDefaults(t *testing.T) {
	m := NewBasicMaterial()
	assert.Equal(t, DoubleSide, m.Side)
	assert.Equal(t, float32(1), m.Opacity)
	assert.False(t, m.Transparent)
	assert.Equal(t, NormalBlending, m.Blending)
	assert.Equal(t, SrcAlphaFactor, m.BlendSrc)
	assert.Equal(t, OneMinusDstColorFactor, m.BlendDst)
	assert.Equal(t, AddEquation, m.BlendEquation)
	assert.True(t, m.DepthTest)
	assert.True(t, m.DepthWrite)
	assert.True(t, m.PolygonOffset)
	assert.Equal(t, float32(1), m.AlphaTest)
	assert.True(t, m.Visible)
	assert.True(t, m.NeedsUpdate)
}

func TestBasicMaterialDefaults(t *testing.T) {
	m := NewBasicMaterial()
	assert.Equal(t, "white", m.Color.String())
	assert.Equal(t, "round", m.WireframeLinecap)
	assert.Equal(t, "round", m.WireframeLinejoin)
	assert.Equal(t, float32(1), m.WireframeLinewidth)
	assert.Equal(t, "BasicMaterialView", m.ViewName)
	assert.Equal(t, "BasicMaterialModel", m.ModelName)
}

func TestMaterialSetColor(t *testing.T) {
	m := NewBasicMaterial()
	require.NoError(t, m.SetColor("#ff0000"))
	assert.Equal(t, "#ff0000", m.Color.String())

	require.NoError(t, m.SetColor([]float64{0.8, 0, 0}))
	assert.Equal(t, "rgb(0,0,0)", m.Color.String())

	require.NoError(t, m.SetColor([]float64{255, 128, 0}))
	assert.Equal(t, "rgb(255,128,0)", m.Color.String())

	require.NoError(t, m.SetColor(0xff00ff))
	assert.Equal(t, 0xff00ff, m.Color.Value())

	// A rejected value must leave the field untouched.
	err := m.SetColor([]float64{1, 2})
	require.Error(t, err)
	assert.Equal(t, 0xff00ff, m.Color.Value())
	err = m.SetColor(struct{}{})
	require.Error(t, err)
}

func TestLambertPhongDefaults(t *testing.T) {
	lm := NewLambertMaterial()
	assert.Equal(t, "white", lm.Ambient.String())
	assert.Equal(t, "black", lm.Emissive.String())
	assert.Equal(t, float32(1), lm.Reflectivity)
	assert.InDelta(t, 0.98, lm.RefractionRatio, tol)
	assert.Equal(t, MultiplyOperation, lm.Combine)
	assert.Equal(t, "LambertMaterialView", lm.ViewName)

	pm := NewPhongMaterial()
	assert.Equal(t, "darkgray", pm.Specular.String())
	assert.Equal(t, float32(30), pm.Shininess)
	assert.Equal(t, "PhongMaterialView", pm.ViewName)
}

func TestLineMaterials(t *testing.T) {
	lb := NewLineBasicMaterial()
	assert.Equal(t, "white", lb.Color.String())
	assert.Equal(t, float32(1), lb.Linewidth)
	assert.Equal(t, "round", lb.Linecap)

	ld := NewLineDashedMaterial()
	assert.Equal(t, float32(1), ld.Scale)
	assert.Equal(t, float32(3), ld.DashSize)
	assert.Equal(t, float32(1), ld.GapSize)

	// Both variants satisfy the line-material constraint on [Line].
	var _ LineMaterial = lb
	var _ LineMaterial = ld
	ln := NewLine(NewPlainGeometry(), ld)
	assert.Equal(t, LineStrip, ln.Type)
}

func TestShaderMaterialDefaults(t *testing.T) {
	m := NewShaderMaterial()
	assert.Equal(t, "void main(){ }", m.FragmentShader)
	assert.Equal(t, "void main(){ }", m.VertexShader)
}

func TestParticleSystemMaterialDefaults(t *testing.T) {
	m := NewParticleSystemMaterial()
	assert.Equal(t, "yellow", m.Color.String())
	assert.Equal(t, float32(1), m.Size)
}

func TestMaterialChangeWireNames(t *testing.T) {
	m := NewBasicMaterial()
	m.SetOpacity(0.5)
	m.SetBlendSrc(OneFactor)
	require.NoError(t, m.SetColor("red"))
	ch := m.Changes()
	require.Len(t, ch, 3)
	assert.Equal(t, "opacity", ch[0].Field)
	assert.Equal(t, "blendSrc", ch[1].Field)
	assert.Equal(t, "OneFactor", ch[1].Value)
	assert.Equal(t, "color", ch[2].Field)
	assert.Equal(t, "red", ch[2].Value)
}
