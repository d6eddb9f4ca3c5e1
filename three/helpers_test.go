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

func TestLightRigs(t *testing.T) {
	rig := LightsColor()
	require.Len(t, rig, 5)
	amb, ok := rig[0].(*AmbientLight)
	require.True(t, ok)
	// Fractional rgb components truncate to integers, faithfully to
	// the synced string format.
	assert.Equal(t, "rgb(0,0,0)", amb.Color.String())
	dl, ok := rig[1].(*DirectionalLight)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 0, 1), dl.Position)

	gray := LightsGray()
	require.Len(t, gray, 5)
	last, ok := gray[4].(*DirectionalLight)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(-1, -1, -1), last.Position)
}

func TestMakeText(t *testing.T) {
	sp := MakeText("label", math32.Vec3(1, 2, 3), 0.5)
	assert.Equal(t, math32.Vec3(1, 2, 3), sp.Position)
	assert.Equal(t, math32.Vec3(1, 0.5, 1), sp.Scale)
	assert.True(t, sp.ScaleToTexture)

	sm, ok := sp.Material.(*SpriteMaterial)
	require.True(t, ok)
	tx, ok := sm.Map.(*TextTexture)
	require.True(t, ok)
	assert.Equal(t, "label", tx.Text)
	assert.Equal(t, 100, tx.Size)
	assert.Equal(t, "white", tx.Color.String())
	assert.False(t, tx.SquareTexture)
}

func TestColormapAt(t *testing.T) {
	cm := Colormaps["gray"]
	require.NotNil(t, cm)
	assert.Equal(t, uint8(0), cm.At(0).R)
	assert.Equal(t, uint8(255), cm.At(1).R)
	mid := cm.At(0.5)
	assert.InDelta(t, 127, int(mid.R), 1)
	// Out-of-range inputs clamp.
	assert.Equal(t, cm.At(0), cm.At(-3))
	assert.Equal(t, cm.At(1), cm.At(7))
}

func TestHeightTexture(t *testing.T) {
	z := [][]float32{
		{0, 1, 2},
		{3, 4, 5},
	}
	tx, err := HeightTexture(z, "gray")
	require.NoError(t, err)
	assert.Equal(t, 3, tx.Width)
	assert.Equal(t, 2, tx.Height)
	assert.Equal(t, RGBAFormat, tx.Format)
	require.Len(t, tx.Data, 2*3*4)
	// Minimum height maps to the first stop, maximum to the last.
	assert.Equal(t, 0, tx.Data[0])
	assert.Equal(t, 255, tx.Data[3])
	assert.Equal(t, 255, tx.Data[len(tx.Data)-4])
}

func TestHeightTextureNaN(t *testing.T) {
	nan := math32.Infinity - math32.Infinity
	z := [][]float32{{nan, 5, 10}}
	tx, err := HeightTexture(z, "gray")
	require.NoError(t, err)
	// NaN maps to the lowest stop.
	assert.Equal(t, 0, tx.Data[0])
	assert.Equal(t, 255, tx.Data[8])
}

func TestHeightTextureConstantField(t *testing.T) {
	z := [][]float32{{2, 2}, {2, 2}}
	tx, err := HeightTexture(z, "gray")
	require.NoError(t, err)
	assert.Equal(t, 0, tx.Data[0])
}

func TestHeightTextureDefaultColormap(t *testing.T) {
	tx, err := HeightTexture([][]float32{{0, 1}}, "")
	require.NoError(t, err)
	// YlGnBu_r starts at the darkest stop.
	assert.Equal(t, int(Colormaps[DefaultColormap][0].R), tx.Data[0])
}

func TestHeightTextureErrors(t *testing.T) {
	_, err := HeightTexture([][]float32{{1}}, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")

	_, err = HeightTexture(nil, "gray")
	require.Error(t, err)

	_, err = HeightTexture([][]float32{{1, 2}, {1}}, "gray")
	require.Error(t, err)
}
