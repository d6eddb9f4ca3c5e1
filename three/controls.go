// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import "github.com/solomonvimal/pythreejs/math32"

// Controls is the base interaction entity: it references, by shared
// reference, the [Object3d] it moves (typically a camera).
type Controls struct {
	Base

	// Controlling is the object driven by this control; may be nil.
	Controlling *Object3d
}

// NewControls returns a new base [Controls].
func NewControls() *Controls {
	ct := &Controls{}
	ct.initView("ControlsView")
	ct.initModel("ControlsModel")
	return ct
}

// controlsDefaults sets the view identification for a controls variant.
func (ct *Controls) controlsDefaults(viewName string) {
	ct.initView(viewName)
	ct.initModel("ControlsModel")
}

// SetControlling sets [Controls.Controlling] and records the change.
func (ct *Controls) SetControlling(v *Object3d) *Controls {
	ct.Controlling = v
	ct.Send("controlling", v)
	return ct
}

// OrbitControls orbit the controlled object around a target point.
type OrbitControls struct {
	Controls

	Target math32.Vector3
}

// NewOrbitControls returns a new [OrbitControls] driving the given object.
func NewOrbitControls(controlling *Object3d) *OrbitControls {
	ct := &OrbitControls{}
	ct.controlsDefaults("OrbitControlsView")
	ct.Controlling = controlling
	return ct
}

// SetTarget sets [OrbitControls.Target] and records the change.
func (ct *OrbitControls) SetTarget(v math32.Vector3) *OrbitControls {
	ct.Target = v
	ct.Send("target", v.ToSlice())
	return ct
}

// TrackballControls rotate the controlled object trackball-style
// around a target point.
type TrackballControls struct {
	Controls

	Target math32.Vector3
}

// NewTrackballControls returns a new [TrackballControls] driving the given object.
func NewTrackballControls(controlling *Object3d) *TrackballControls {
	ct := &TrackballControls{}
	ct.controlsDefaults("TrackballControlsView")
	ct.Controlling = controlling
	return ct
}

// SetTarget sets [TrackballControls.Target] and records the change.
func (ct *TrackballControls) SetTarget(v math32.Vector3) *TrackballControls {
	ct.Target = v
	ct.Send("target", v.ToSlice())
	return ct
}

// FlyControls fly the controlled object with continuous speeds and
// angular rates.
type FlyControls struct {
	Controls

	ForwardSpeed float32
	LateralSpeed float32
	UpwardSpeed  float32
	Roll         float32
	Pitch        float32
	Yaw          float32
}

// NewFlyControls returns a new [FlyControls] driving the given object.
func NewFlyControls(controlling *Object3d) *FlyControls {
	ct := &FlyControls{}
	ct.controlsDefaults("FlyControlsView")
	ct.Controlling = controlling
	return ct
}

// SetForwardSpeed sets [FlyControls.ForwardSpeed] and records the change.
func (ct *FlyControls) SetForwardSpeed(v float32) *FlyControls {
	ct.ForwardSpeed = v
	ct.Send("forward_speed", v)
	return ct
}

// SetLateralSpeed sets [FlyControls.LateralSpeed] and records the change.
func (ct *FlyControls) SetLateralSpeed(v float32) *FlyControls {
	ct.LateralSpeed = v
	ct.Send("lateral_speed", v)
	return ct
}

// SetUpwardSpeed sets [FlyControls.UpwardSpeed] and records the change.
func (ct *FlyControls) SetUpwardSpeed(v float32) *FlyControls {
	ct.UpwardSpeed = v
	ct.Send("upward_speed", v)
	return ct
}

// SetRoll sets [FlyControls.Roll] and records the change.
func (ct *FlyControls) SetRoll(v float32) *FlyControls {
	ct.Roll = v
	ct.Send("roll", v)
	return ct
}

// SetPitch sets [FlyControls.Pitch] and records the change.
func (ct *FlyControls) SetPitch(v float32) *FlyControls {
	ct.Pitch = v
	ct.Send("pitch", v)
	return ct
}

// SetYaw sets [FlyControls.Yaw] and records the change.
func (ct *FlyControls) SetYaw(v float32) *FlyControls {
	ct.Yaw = v
	ct.Send("yaw", v)
	return ct
}

// PickResult is one front-end hit reported by a [Picker].
type PickResult map[string]any

// Picker reports the scene object and face under the pointer on the
// configured event. The hit fields (Picked, Distance, Point, Object,
// Face data) are written by the front end; the model only declares
// them.
type Picker struct {
	Controls

	// Event is the pointer event that triggers picking.
	Event string

	// Root restricts picking to this subtree; may be nil.
	Root *Object3d

	// Picked holds all hits from the last pick when All is set.
	Picked []PickResult

	// Distance is the distance from the camera to the picked point.
	Distance float32

	// Point is the picked point in scene coordinates.
	Point math32.Vector3

	// Object is the picked node.
	Object *Object3d

	// Face holds the vertex indices of the picked face.
	Face [3]int

	// FaceNormal is the normal of the picked face.
	FaceNormal math32.Vector3

	// FaceVertices holds the vertex positions of the picked face.
	FaceVertices []math32.Vector3

	// FaceIndex is the index of the picked face.
	FaceIndex int

	// All selects whether every intersection is reported, not just
	// the nearest.
	All bool
}

// NewPicker returns a new [Picker] reacting to click events.
func NewPicker() *Picker {
	pk := &Picker{Event: "click"}
	pk.initView("PickerView")
	pk.initModel("PickerModel")
	return pk
}

// SetEvent sets [Picker.Event] and records the change.
func (pk *Picker) SetEvent(v string) *Picker {
	pk.Event = v
	pk.Send("event", v)
	return pk
}

// SetRoot sets [Picker.Root] and records the change.
func (pk *Picker) SetRoot(v *Object3d) *Picker {
	pk.Root = v
	pk.Send("root", v)
	return pk
}

// SetAll sets [Picker.All] and records the change.
func (pk *Picker) SetAll(v bool) *Picker {
	pk.All = v
	pk.Send("all", v)
	return pk
}
