// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"fmt"

	"github.com/solomonvimal/pythreejs/math32"
)

// Node is the interface for all spatial entities that can live in the
// scene graph as children of an [Object3d]. Children are shared
// references: a node may be parented by multiple objects at once and
// no ownership or exclusivity is enforced.
type Node interface {
	Entity

	// AsObject3d returns the [Object3d] of this node, which provides
	// the core spatial functionality.
	AsObject3d() *Object3d
}

// Object3d is the base spatial entity: a position, scale and
// orientation in the scene, a visibility flag, and an ordered list of
// child references. It owns the matrix-decomposition and look-at math.
type Object3d struct {
	Base

	// Position is the translation of this object.
	Position math32.Vector3

	// Quaternion is the orientation of this object in x, y, z, w form.
	// It is unit length in all valid states, but this is not enforced
	// by validation.
	Quaternion math32.Quat

	// Scale is the per-axis scale of this object.
	Scale math32.Vector3

	// Up is the reference up direction used by [Object3d.LookAt].
	Up math32.Vector3

	// Visible is whether the object is rendered.
	Visible bool

	// CastShadow is whether the object casts shadows.
	CastShadow bool

	// ReceiveShadow is whether the object receives shadows.
	ReceiveShadow bool

	// Children is the ordered list of child nodes, by shared reference.
	Children []Node
}

// NewObject3d returns a new [Object3d] with default field values.
func NewObject3d() *Object3d {
	o := &Object3d{}
	o.Defaults()
	o.initView("Object3dView")
	o.initModel("Object3dModel")
	return o
}

// Defaults sets the default field values: unit scale, +Y up,
// identity orientation, visible.
func (o *Object3d) Defaults() {
	o.Quaternion = math32.QuatIdentity()
	o.Scale = math32.Vec3(1, 1, 1)
	o.Up = math32.Vec3(0, 1, 0)
	o.Visible = true
}

func (o *Object3d) AsObject3d() *Object3d {
	return o
}

// SetPosition sets [Object3d.Position] and records the change.
func (o *Object3d) SetPosition(v math32.Vector3) *Object3d {
	o.Position = v
	o.Send("position", v.ToSlice())
	return o
}

// SetPositionSlice sets the position from a slice, which must have
// exactly 3 elements.
func (o *Object3d) SetPositionSlice(vals []float32) error {
	v, err := math32.V3FromSlice(vals)
	if err != nil {
		return fmt.Errorf("three.Object3d: position: %w", err)
	}
	o.SetPosition(v)
	return nil
}

// SetQuaternion sets [Object3d.Quaternion] and records the change.
func (o *Object3d) SetQuaternion(q math32.Quat) *Object3d {
	o.Quaternion = q
	o.Send("quaternion", q.ToSlice())
	return o
}

// SetQuaternionSlice sets the quaternion from a slice, which must have
// exactly 4 elements, in x, y, z, w order.
func (o *Object3d) SetQuaternionSlice(vals []float32) error {
	q, err := math32.QuatFromSlice(vals)
	if err != nil {
		return fmt.Errorf("three.Object3d: quaternion: %w", err)
	}
	o.SetQuaternion(q)
	return nil
}

// SetScale sets [Object3d.Scale] and records the change.
func (o *Object3d) SetScale(v math32.Vector3) *Object3d {
	o.Scale = v
	o.Send("scale", v.ToSlice())
	return o
}

// SetScaleSlice sets the scale from a slice, which must have
// exactly 3 elements.
func (o *Object3d) SetScaleSlice(vals []float32) error {
	v, err := math32.V3FromSlice(vals)
	if err != nil {
		return fmt.Errorf("three.Object3d: scale: %w", err)
	}
	o.SetScale(v)
	return nil
}

// SetUp sets [Object3d.Up] and records the change.
func (o *Object3d) SetUp(v math32.Vector3) *Object3d {
	o.Up = v
	o.Send("up", v.ToSlice())
	return o
}

// SetVisible sets [Object3d.Visible] and records the change.
func (o *Object3d) SetVisible(v bool) *Object3d {
	o.Visible = v
	o.Send("visible", v)
	return o
}

// SetCastShadow sets [Object3d.CastShadow] and records the change.
func (o *Object3d) SetCastShadow(v bool) *Object3d {
	o.CastShadow = v
	o.Send("castShadow", v)
	return o
}

// SetReceiveShadow sets [Object3d.ReceiveShadow] and records the change.
func (o *Object3d) SetReceiveShadow(v bool) *Object3d {
	o.ReceiveShadow = v
	o.Send("receiveShadow", v)
	return o
}

// SetChildren replaces the child list and records the change.
func (o *Object3d) SetChildren(children ...Node) *Object3d {
	o.Children = children
	o.Send("children", o.Children)
	return o
}

// AddChildren appends the given nodes to the child list and records
// the change.
func (o *Object3d) AddChildren(children ...Node) *Object3d {
	o.Children = append(o.Children, children...)
	o.Send("children", o.Children)
	return o
}

// RemoveChild removes the first occurrence of the given node from the
// child list, recording the change. It reports whether the node was
// found; the node itself is only unreferenced, never destroyed.
func (o *Object3d) RemoveChild(n Node) bool {
	for i, c := range o.Children {
		if c == n {
			o.Children = append(o.Children[:i], o.Children[i+1:]...)
			o.Send("children", o.Children)
			return true
		}
	}
	return false
}

// SetMatrix decomposes the given 4x4 transform, which must have
// exactly 16 elements with the basis vectors at offsets 0-2, 4-6 and
// 8-10 and the translation at offsets 12-14. It sets the position to
// the translation, the scale to the lengths of the three basis
// vectors, and the quaternion via [math32.QuatFromRotation].
// The basis vectors are passed to the quaternion extraction without
// being normalized first, mirroring the front-end protocol exactly:
// a matrix with non-unit scale therefore yields a non-unit quaternion.
func (o *Object3d) SetMatrix(m []float32) error {
	if len(m) != 16 {
		return fmt.Errorf("three.Object3d: matrix must have exactly 16 elements, got %d", len(m))
	}
	o.SetPosition(math32.Vec3(m[12], m[13], m[14]))
	var x, y, z math32.Vector3
	x.FromSlice(m, 0)
	y.FromSlice(m, 4)
	z.FromSlice(m, 8)
	o.SetScale(math32.Vec3(x.Length(), y.Length(), z.Length()))
	o.SetQuaternion(math32.QuatFromRotation(x, y, z))
	return nil
}

// LookAt orients this object so that its forward axis points from eye
// toward target, using [Object3d.Up] as the up reference. A degenerate
// direction (eye == target) falls back to +Z forward, and a forward
// parallel to up is nudged by a small epsilon, so the result is always
// a well-defined quaternion. The quaternion is mutated in place.
func (o *Object3d) LookAt(eye, target math32.Vector3) {
	fwd := eye.Sub(target).Normal()
	if fwd.Length() == 0 {
		fwd.Z = 1
	}
	right := o.Up.Cross(fwd).Normal()
	if right.Length() == 0 {
		fwd.X += 0.0001
		right = o.Up.Cross(fwd).Normal()
	}
	up := fwd.Cross(right)
	o.SetQuaternion(math32.QuatFromRotation(right, up, fwd))
}

// ScaledObject is a parent whose matrix is re-scaled by the front end
// every time the camera is adjusted, so that its children always
// occupy the same size in the viewport.
type ScaledObject struct {
	Object3d
}

// NewScaledObject returns a new [ScaledObject] with default field values.
func NewScaledObject() *ScaledObject {
	o := &ScaledObject{}
	o.Defaults()
	o.initView("ScaledObjectView")
	o.initModel("Object3dModel")
	return o
}
