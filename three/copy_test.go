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

func TestClone(t *testing.T) {
	src := NewObject3d()
	src.SetPosition(math32.Vec3(1, 2, 3))
	src.SetScale(math32.Vec3(2, 2, 2))

	dst := Clone(src)
	assert.Equal(t, src.Position, dst.Position)
	assert.Equal(t, src.Scale, dst.Scale)
	assert.Equal(t, src.ViewName, dst.ViewName)

	// The clone is independent state with no pending history.
	assert.Nil(t, dst.Changes())
	require.Len(t, src.Changes(), 2)
	dst.SetPosition(math32.Vec3(9, 9, 9))
	assert.Equal(t, math32.Vec3(1, 2, 3), src.Position)
}

func TestCloneMaterial(t *testing.T) {
	src := NewPhongMaterial()
	require.NoError(t, src.SetColor("#00ff00"))
	src.SetShininess(80)

	dst := Clone(src)
	assert.Equal(t, "#00ff00", dst.Color.String())
	assert.Equal(t, float32(80), dst.Shininess)
	assert.Equal(t, "darkgray", dst.Specular.String())
}
