// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightDefaults(t *testing.T) {
	amb := NewAmbientLight()
	assert.Equal(t, "white", amb.Color.String())
	assert.Equal(t, "AmbientLight", amb.ViewName)

	dl := NewDirectionalLight()
	assert.Equal(t, float32(1), dl.Intensity)
	assert.Equal(t, "DirectionalLight", dl.ViewName)

	pl := NewPointLight()
	assert.Equal(t, float32(10), pl.Distance)

	sl := NewSpotLight()
	assert.Equal(t, float32(10), sl.Angle)
	assert.Equal(t, float32(0.5), sl.Exponent)

	hl := NewHemisphereLight()
	assert.Equal(t, "blue", hl.GroundColor.String())
}

func TestHemisphereLightWireName(t *testing.T) {
	hl := NewHemisphereLight()
	require.NoError(t, hl.SetGroundColor("green"))
	ch := hl.Changes()
	require.Len(t, ch, 1)
	assert.Equal(t, "ground_color", ch[0].Field)
	assert.Equal(t, "green", ch[0].Value)
}

func TestLightIsNode(t *testing.T) {
	// Lights are spatial entities and can be parented in the scene.
	sc := NewScene()
	sc.AddChildren(NewAmbientLight(), NewDirectionalLight())
	assert.Len(t, sc.Children, 2)
}

func TestLightSetColor(t *testing.T) {
	lt := NewPointLight()
	require.NoError(t, lt.SetColor([]float64{255, 0, 0}))
	assert.Equal(t, "rgb(255,0,0)", lt.Color.String())
	assert.Error(t, lt.SetColor(map[string]int{}))
}
