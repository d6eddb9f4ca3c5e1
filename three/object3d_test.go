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

const tol = 1.0e-5

func assertQuatNear(t *testing.T, want, got math32.Quat) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
	assert.InDelta(t, want.W, got.W, tol)
}

func TestObject3dDefaults(t *testing.T) {
	o := NewObject3d()
	assert.Equal(t, math32.Vec3(0, 0, 0), o.Position)
	assert.Equal(t, math32.Vec3(1, 1, 1), o.Scale)
	assert.Equal(t, math32.Vec3(0, 1, 0), o.Up)
	assert.Equal(t, math32.QuatIdentity(), o.Quaternion)
	assert.True(t, o.Visible)
	assert.False(t, o.CastShadow)
	assert.Equal(t, "Object3dView", o.ViewName)
	assert.Equal(t, DefaultModule, o.ViewModule)
}

func TestSetMatrixIdentity(t *testing.T) {
	o := NewObject3d()
	m := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	require.NoError(t, o.SetMatrix(m))
	assert.Equal(t, math32.Vec3(0, 0, 0), o.Position)
	assert.Equal(t, math32.Vec3(1, 1, 1), o.Scale)
	assertQuatNear(t, math32.QuatIdentity(), o.Quaternion)
}

func TestSetMatrixTranslationScale(t *testing.T) {
	o := NewObject3d()
	m := []float32{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		5, 6, 7, 1,
	}
	require.NoError(t, o.SetMatrix(m))
	assert.Equal(t, math32.Vec3(5, 6, 7), o.Position)
	assert.Equal(t, math32.Vec3(2, 3, 4), o.Scale)
	// The quaternion is extracted from the scaled basis vectors as-is,
	// so a non-unit scale yields a non-unit quaternion with the same
	// axis: here pure w, with magnitude sqrt(2+3+4+1)/2.
	assertQuatNear(t, math32.Quat{X: 0, Y: 0, Z: 0, W: math32.Sqrt(10) / 2}, o.Quaternion)
}

func TestSetMatrixRotation(t *testing.T) {
	o := NewObject3d()
	// Column-major rotation by 90 degrees about +Z.
	m := []float32{
		0, 1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	require.NoError(t, o.SetMatrix(m))
	s := math32.Sqrt(2) / 2
	assertQuatNear(t, math32.Quat{X: 0, Y: 0, Z: s, W: s}, o.Quaternion)
	assert.InDelta(t, 1, o.Quaternion.Length(), tol)
}

func TestSetMatrixBadLength(t *testing.T) {
	o := NewObject3d()
	err := o.SetMatrix([]float32{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "16")
	// The failed call must not touch any field.
	assert.Equal(t, math32.Vec3(0, 0, 0), o.Position)
	assert.Equal(t, math32.Vec3(1, 1, 1), o.Scale)
	assert.Nil(t, o.Changes())
}

func TestLookAt(t *testing.T) {
	o := NewObject3d()
	o.LookAt(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 0))
	assertQuatNear(t, math32.QuatIdentity(), o.Quaternion)

	o.LookAt(math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 0))
	s := math32.Sqrt(2) / 2
	assertQuatNear(t, math32.Quat{X: 0, Y: s, Z: 0, W: s}, o.Quaternion)
}

func TestLookAtDegenerate(t *testing.T) {
	o := NewObject3d()
	// eye == target falls back to +Z forward.
	o.LookAt(math32.Vec3(2, 2, 2), math32.Vec3(2, 2, 2))
	assert.False(t, o.Quaternion.IsNaN())
	assertQuatNear(t, math32.QuatIdentity(), o.Quaternion)

	// Forward parallel to up takes the epsilon-nudge path and still
	// yields a valid unit orientation.
	o.LookAt(math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 0))
	assert.False(t, o.Quaternion.IsNaN())
	assert.InDelta(t, 1, o.Quaternion.Length(), 1.0e-3)
}

func TestChangelist(t *testing.T) {
	o := NewObject3d()
	assert.Nil(t, o.Changes())

	o.SetPosition(math32.Vec3(1, 2, 3))
	o.SetVisible(false)
	ch := o.Changes()
	require.Len(t, ch, 2)
	assert.Equal(t, "position", ch[0].Field)
	assert.Equal(t, []float32{1, 2, 3}, ch[0].Value)
	assert.Equal(t, "visible", ch[1].Field)
	assert.Equal(t, false, ch[1].Value)

	// Draining is destructive.
	assert.Nil(t, o.Changes())
}

func TestOnChangeHook(t *testing.T) {
	o := NewObject3d()
	var fields []string
	o.OnChange = func(field string, value any) {
		fields = append(fields, field)
	}
	o.SetScale(math32.Vec3(2, 2, 2))
	o.SetCastShadow(true)
	assert.Equal(t, []string{"scale", "castShadow"}, fields)
	// The changelist is recorded regardless of the hook.
	assert.Len(t, o.Changes(), 2)
}

func TestChildren(t *testing.T) {
	parent := NewObject3d()
	a := NewObject3d()
	b := NewObject3d()
	parent.AddChildren(a, b)
	require.Len(t, parent.Children, 2)

	// Children are shared references: the same node can be parented
	// twice without complaint.
	other := NewObject3d()
	other.AddChildren(a)
	assert.Same(t, a, other.Children[0].AsObject3d())

	assert.True(t, parent.RemoveChild(a))
	require.Len(t, parent.Children, 1)
	assert.Same(t, b, parent.Children[0].AsObject3d())
	assert.False(t, parent.RemoveChild(a))
}

func TestSetSliceValidation(t *testing.T) {
	o := NewObject3d()
	require.NoError(t, o.SetPositionSlice([]float32{1, 2, 3}))
	assert.Equal(t, math32.Vec3(1, 2, 3), o.Position)
	assert.Error(t, o.SetPositionSlice([]float32{1, 2}))
	assert.Error(t, o.SetScaleSlice([]float32{1, 2, 3, 4}))
	require.NoError(t, o.SetQuaternionSlice([]float32{0, 0, 0, 1}))
	assert.Error(t, o.SetQuaternionSlice(nil))
}
