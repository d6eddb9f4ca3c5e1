// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Quat is a quaternion with X, Y, Z and W components,
// representing a 3D rotation without gimbal lock.
// The identity rotation is (0, 0, 0, 1).
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion with the given components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromSlice returns a new [Quat] from the given slice,
// which must have exactly 4 elements, in x, y, z, w order.
func QuatFromSlice(vals []float32) (Quat, error) {
	if len(vals) != 4 {
		return Quat{}, fmt.Errorf("math32.QuatFromSlice: slice must have exactly 4 elements, got %d", len(vals))
	}
	return Quat{vals[0], vals[1], vals[2], vals[3]}, nil
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quaternion to the identity rotation.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// IsIdentity returns whether this is the identity quaternion.
func (q Quat) IsIdentity() bool {
	return q == Quat{W: 1}
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// ToSlice returns this quaternion's components as a 4-element slice,
// in x, y, z, w order.
func (q Quat) ToSlice() []float32 {
	return []float32{q.X, q.Y, q.Z, q.W}
}

// IsNaN returns whether any component is a NaN value.
func (q Quat) IsNaN() bool {
	return IsNaN(q.X) || IsNaN(q.Y) || IsNaN(q.Z) || IsNaN(q.W)
}

// Length returns the length (magnitude) of this quaternion.
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normal returns this quaternion normalized to unit length.
// Returns the identity quaternion if the length is zero.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return QuatIdentity()
	}
	l = 1 / l
	return Quat{q.X * l, q.Y * l, q.Z * l, q.W * l}
}

// QuatFromRotation returns the quaternion for the rotation whose
// basis vectors are x, y and z (i.e., the columns of the rotation matrix).
// It uses the standard numerically-stable trace-based extraction, branching
// on the largest diagonal term. The basis vectors are used exactly as given:
// they are not normalized first, so scaled inputs produce a scaled result.
func QuatFromRotation(x, y, z Vector3) Quat {
	trace := x.X + y.Y + z.Z
	switch {
	case trace > 0:
		s := 0.5 / Sqrt(trace+1)
		return Quat{(y.Z - z.Y) * s, (z.X - x.Z) * s, (x.Y - y.X) * s, 0.25 / s}
	case x.X > y.Y && x.X > z.Z:
		s := 2 * Sqrt(1+x.X-y.Y-z.Z)
		return Quat{0.25 * s, (y.X + x.Y) / s, (z.X + x.Z) / s, (y.Z - z.Y) / s}
	case y.Y > z.Z:
		s := 2 * Sqrt(1+y.Y-x.X-z.Z)
		return Quat{(y.X + x.Y) / s, 0.25 * s, (z.Y + y.Z) / s, (z.X - x.Z) / s}
	default:
		s := 2 * Sqrt(1+z.Z-x.X-y.Y)
		return Quat{(z.X + x.Z) / s, (z.Y + y.Z) / s, 0.25 * s, (x.Y - y.X) / s}
	}
}

// RotationBasis returns the three basis vectors (matrix columns) of the
// rotation represented by this quaternion, which is assumed to be unit length.
func (q Quat) RotationBasis() (x, y, z Vector3) {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	x = Vec3(1-2*(yy+zz), 2*(xy+wz), 2*(xz-wy))
	y = Vec3(2*(xy-wz), 1-2*(xx+zz), 2*(yz+wx))
	z = Vec3(2*(xz+wy), 2*(yz-wx), 1-2*(xx+yy))
	return
}

// MulVector3 returns the given vector rotated by this quaternion,
// which is assumed to be unit length.
func (q Quat) MulVector3(v Vector3) Vector3 {
	qv := Vec3(q.X, q.Y, q.Z)
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.MulScalar(2 * q.W)).Add(uuv.MulScalar(2))
}
