// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTextureDefaults(t *testing.T) {
	tx := NewDataTexture()
	assert.Equal(t, RGBAFormat, tx.Format)
	assert.Equal(t, 256, tx.Width)
	assert.Equal(t, 256, tx.Height)
	assert.Equal(t, UnsignedByteType, tx.Type)
	assert.Equal(t, UVMapping, tx.Mapping)
	assert.Equal(t, ClampToEdgeWrapping, tx.WrapS)
	assert.Equal(t, ClampToEdgeWrapping, tx.WrapT)
	assert.Equal(t, LinearFilter, tx.MagFilter)
	assert.Equal(t, NearestFilter, tx.MinFilter)
	assert.Equal(t, 1, tx.Anisotropy)
	assert.Equal(t, "DataTextureView", tx.ViewName)
}

func TestTextTextureDefaults(t *testing.T) {
	tx := NewTextTexture()
	assert.Equal(t, "Arial", tx.FontFace)
	assert.Equal(t, 12, tx.Size)
	assert.Equal(t, "black", tx.Color.String())
	assert.True(t, tx.SquareTexture)

	// The text field syncs under the front end's name.
	tx.SetText("hello")
	ch := tx.Changes()
	require.Len(t, ch, 1)
	assert.Equal(t, "string", ch[0].Field)
	assert.Equal(t, "hello", ch[0].Value)

	require.NoError(t, tx.SetColor("white"))
	assert.Error(t, tx.SetColor([]int{1, 2, 3, 4}))
}

func TestImageTextureWireName(t *testing.T) {
	tx := NewImageTexture()
	tx.SetImageURI("data:image/png;base64,AAAA")
	ch := tx.Changes()
	require.Len(t, ch, 1)
	assert.Equal(t, "imageuri", ch[0].Field)
}
