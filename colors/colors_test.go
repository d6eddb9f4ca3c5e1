// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTriple(t *testing.T) {
	c, err := From([]float64{255, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "rgb(255,0,0)", c.Str)

	// truncation toward zero, no clamping
	c, err = From([]float64{0.9, -1.5, 300.7})
	require.NoError(t, err)
	assert.Equal(t, "rgb(0,-1,300)", c.Str)

	c, err = From([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "rgb(1,2,3)", c.Str)

	c, err = From([3]float32{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, "rgb(10,20,30)", c.Str)
}

func TestFromString(t *testing.T) {
	for _, s := range []string{"red", "#ff0000", "#f00", "rgb(100%, 0%, 0%)", "rgb(255, 0, 0)"} {
		c, err := From(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.Str) // passed through unchanged
		assert.False(t, c.IsInt)
	}
}

func TestFromInt(t *testing.T) {
	c, err := From(0xff0000)
	require.NoError(t, err)
	assert.True(t, c.IsInt)
	assert.Equal(t, 0xff0000, c.Int)

	c, err = From(int64(42))
	require.NoError(t, err)
	assert.Equal(t, 42, c.Int)

	// floats convert to integers
	c, err = From(3.9)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Int)
}

func TestFromInvalid(t *testing.T) {
	_, err := From([]float64{1, 2})
	assert.Error(t, err)
	_, err = From(struct{}{})
	assert.Error(t, err)
	_, err = From(nil)
	assert.Error(t, err)
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{FromInt(0xff0000), color.RGBA{255, 0, 0, 255}},
		{FromString("red"), color.RGBA{255, 0, 0, 255}},
		{FromString("#ff0000"), color.RGBA{255, 0, 0, 255}},
		{FromString("#f00"), color.RGBA{255, 0, 0, 255}},
		{FromString("rgb(255, 0, 0)"), color.RGBA{255, 0, 0, 255}},
		{FromRGB(0, 128, 255), color.RGBA{0, 128, 255, 255}},
		{FromString("darkgray"), color.RGBA{169, 169, 169, 255}},
	}
	for _, tt := range tests {
		got, err := tt.in.RGBA()
		require.NoError(t, err, tt.in.String())
		assert.Equal(t, tt.want, got, tt.in.String())
	}

	_, err := FromString("no-such-color").RGBA()
	assert.Error(t, err)
	_, err = FromString("").RGBA()
	assert.Error(t, err)
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(FromString("white"))
	require.NoError(t, err)
	assert.Equal(t, `"white"`, string(b))

	b, err = json.Marshal(FromInt(0xabcdef))
	require.NoError(t, err)
	assert.Equal(t, "11259375", string(b))

	var c Color
	require.NoError(t, json.Unmarshal([]byte(`"blue"`), &c))
	assert.Equal(t, FromString("blue"), c)
	require.NoError(t, json.Unmarshal([]byte("7"), &c))
	assert.Equal(t, FromInt(7), c)
}
