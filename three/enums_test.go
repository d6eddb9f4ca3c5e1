// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "DoubleSide", DoubleSide.String())
	assert.Equal(t, "NormalBlending", NormalBlending.String())
	assert.Equal(t, "OneMinusDstColorFactor", OneMinusDstColorFactor.String())
	assert.Equal(t, "AddEquation", AddEquation.String())
	assert.Equal(t, "SmoothShading", SmoothShading.String())
	assert.Equal(t, "RGBAFormat", RGBAFormat.String())
	assert.Equal(t, "UnsignedByteType", UnsignedByteType.String())
	assert.Equal(t, "UVMapping", UVMapping.String())
	assert.Equal(t, "ClampToEdgeWrapping", ClampToEdgeWrapping.String())
	assert.Equal(t, "LinearFilter", LinearFilter.String())
	assert.Equal(t, "NearestFilter", NearestFilter.String())
	assert.Equal(t, "LinePieces", LinePieces.String())
	assert.Equal(t, "webgl", WebGLRenderer.String())
	assert.Equal(t, "auto", AutoRenderer.String())
}

func TestEnumSetString(t *testing.T) {
	var s Side
	require.NoError(t, s.SetString("BackSide"))
	assert.Equal(t, BackSide, s)

	var b Blending
	require.NoError(t, b.SetString("AdditiveBlending"))
	assert.Equal(t, AdditiveBlending, b)

	var rt RendererType
	require.NoError(t, rt.SetString("canvas"))
	assert.Equal(t, CanvasRenderer, rt)

	err := s.SetString("NoSuchSide")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchSide")
	// A failed parse leaves the previous value in place.
	assert.Equal(t, BackSide, s)
}

func TestEnumOutOfRangeString(t *testing.T) {
	bad := Side(99)
	assert.Contains(t, bad.String(), "99")
}
