// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, -2}, Vec3(5, 10, -2))
	assert.Equal(t, Vector3{3, 3, 3}, Vector3Scalar(3))

	v := Vector3{}
	v.Set(-1, 7, 2)
	assert.Equal(t, Vector3{-1, 7, 2}, v)

	assert.Equal(t, Vector3{1, 1, 2}, Vec3(0, 1, 1).Add(Vec3(1, 0, 1)))
	assert.Equal(t, Vector3{-1, 1, 0}, Vec3(0, 1, 1).Sub(Vec3(1, 0, 1)))
	assert.Equal(t, Vector3{2, 4, 6}, Vec3(1, 2, 3).MulScalar(2))
	assert.Equal(t, float32(3), Vec3(1, 1, 1).Dot(Vec3(1, 1, 1)))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
}

func TestVector3Cross(t *testing.T) {
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(1, 0, 0), Vec3(0, 1, 0).Cross(Vec3(0, 0, 1)))
	assert.Equal(t, Vec3(0, 0, 0), Vec3(0, 1, 0).Cross(Vec3(0, 1, 0)))
}

func TestVector3Normal(t *testing.T) {
	assert.Equal(t, Vec3(1, 0, 0), Vec3(10, 0, 0).Normal())
	// zero-length input yields zero vector, not NaN
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
}

func TestV3FromSlice(t *testing.T) {
	v, err := V3FromSlice([]float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, Vector3{1, 2, 3}, v)

	_, err = V3FromSlice([]float32{1, 2})
	assert.Error(t, err)
	_, err = V3FromSlice([]float32{1, 2, 3, 4})
	assert.Error(t, err)

	_, err = V2FromSlice([]float32{1, 2, 3})
	assert.Error(t, err)
	v2, err := V2FromSlice([]float32{4, 5})
	require.NoError(t, err)
	assert.Equal(t, Vector2{4, 5}, v2)
}
