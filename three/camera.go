// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// Camera is the base viewing entity; use [PerspectiveCamera] or
// [OrthographicCamera] for an actual projection.
type Camera struct {
	Object3d
}

// NewCamera returns a new base [Camera] with default field values.
func NewCamera() *Camera {
	c := &Camera{}
	c.Defaults()
	c.initView("CameraView")
	c.initModel("Object3dModel")
	return c
}

// PerspectiveCamera is a perspective-projection camera.
type PerspectiveCamera struct {
	Camera

	// Fov is the vertical field of view in degrees.
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspectiveCamera returns a new [PerspectiveCamera] with default
// field values: 50 degree fov, 3:2 aspect, near 0.1, far 2000.
func NewPerspectiveCamera() *PerspectiveCamera {
	c := &PerspectiveCamera{Fov: 50, Aspect: 6.0 / 4.0, Near: 0.1, Far: 2000}
	c.Defaults()
	c.initView("PerspectiveCameraView")
	c.initModel("Object3dModel")
	return c
}

// SetFov sets [PerspectiveCamera.Fov] and records the change.
func (c *PerspectiveCamera) SetFov(v float32) *PerspectiveCamera {
	c.Fov = v
	c.Send("fov", v)
	return c
}

// SetAspect sets [PerspectiveCamera.Aspect] and records the change.
func (c *PerspectiveCamera) SetAspect(v float32) *PerspectiveCamera {
	c.Aspect = v
	c.Send("aspect", v)
	return c
}

// SetNear sets [PerspectiveCamera.Near] and records the change.
func (c *PerspectiveCamera) SetNear(v float32) *PerspectiveCamera {
	c.Near = v
	c.Send("near", v)
	return c
}

// SetFar sets [PerspectiveCamera.Far] and records the change.
func (c *PerspectiveCamera) SetFar(v float32) *PerspectiveCamera {
	c.Far = v
	c.Send("far", v)
	return c
}

// OrthographicCamera is an orthographic-projection camera.
type OrthographicCamera struct {
	Camera

	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Near   float32
	Far    float32
}

// NewOrthographicCamera returns a new [OrthographicCamera] with
// default field values.
func NewOrthographicCamera() *OrthographicCamera {
	c := &OrthographicCamera{Left: -10, Right: 10, Top: -10, Bottom: 10, Near: 0.1, Far: 2000}
	c.Defaults()
	c.initView("OrthographicCameraView")
	c.initModel("Object3dModel")
	return c
}

// SetLeft sets [OrthographicCamera.Left] and records the change.
func (c *OrthographicCamera) SetLeft(v float32) *OrthographicCamera {
	c.Left = v
	c.Send("left", v)
	return c
}

// SetRight sets [OrthographicCamera.Right] and records the change.
func (c *OrthographicCamera) SetRight(v float32) *OrthographicCamera {
	c.Right = v
	c.Send("right", v)
	return c
}

// SetTop sets [OrthographicCamera.Top] and records the change.
func (c *OrthographicCamera) SetTop(v float32) *OrthographicCamera {
	c.Top = v
	c.Send("top", v)
	return c
}

// SetBottom sets [OrthographicCamera.Bottom] and records the change.
func (c *OrthographicCamera) SetBottom(v float32) *OrthographicCamera {
	c.Bottom = v
	c.Send("bottom", v)
	return c
}

// SetNear sets [OrthographicCamera.Near] and records the change.
func (c *OrthographicCamera) SetNear(v float32) *OrthographicCamera {
	c.Near = v
	c.Send("near", v)
	return c
}

// SetFar sets [OrthographicCamera.Far] and records the change.
func (c *OrthographicCamera) SetFar(v float32) *OrthographicCamera {
	c.Far = v
	c.Send("far", v)
	return c
}
