// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import "github.com/solomonvimal/pythreejs/colors"

// Light is the base light entity: a spatial object with a color.
// Lights are positioned like any other [Object3d]; directional lights
// are assumed to point at the origin.
type Light struct {
	Object3d

	Color colors.Color
}

// lightDefaults sets the shared light defaults: white color.
func (lt *Light) lightDefaults() {
	lt.Defaults()
	lt.Color = colors.FromString("white")
}

// SetColor validates and sets [Light.Color], recording the change;
// see [colors.From] for the accepted forms.
func (lt *Light) SetColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	lt.Color = c
	lt.Send("color", c.Value())
	return nil
}

// AmbientLight illuminates the whole scene uniformly.
type AmbientLight struct {
	Light
}

// NewAmbientLight returns a new [AmbientLight] with default field values.
func NewAmbientLight() *AmbientLight {
	lt := &AmbientLight{}
	lt.lightDefaults()
	lt.initView("AmbientLight")
	lt.initModel("Object3dModel")
	return lt
}

// IntensityLight is a light with an intensity factor.
type IntensityLight struct {
	Light

	Intensity float32
}

// NewIntensityLight returns a new [IntensityLight] with default field values.
func NewIntensityLight() *IntensityLight {
	lt := &IntensityLight{}
	lt.intensityDefaults()
	lt.initView("PositionLight")
	lt.initModel("Object3dModel")
	return lt
}

func (lt *IntensityLight) intensityDefaults() {
	lt.lightDefaults()
	lt.Intensity = 1
}

// SetIntensity sets [IntensityLight.Intensity] and records the change.
func (lt *IntensityLight) SetIntensity(v float32) *IntensityLight {
	lt.Intensity = v
	lt.Send("intensity", v)
	return lt
}

// HemisphereLight fades between a sky color and a ground color
// across the hemisphere.
type HemisphereLight struct {
	IntensityLight

	GroundColor colors.Color
}

// NewHemisphereLight returns a new [HemisphereLight] with default field values.
func NewHemisphereLight() *HemisphereLight {
	lt := &HemisphereLight{}
	lt.intensityDefaults()
	lt.GroundColor = colors.FromString("blue")
	lt.initView("HemisphereLight")
	lt.initModel("Object3dModel")
	return lt
}

// SetGroundColor validates and sets [HemisphereLight.GroundColor],
// recording the change.
func (lt *HemisphereLight) SetGroundColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	lt.GroundColor = c
	lt.Send("ground_color", c.Value())
	return nil
}

// DirectionalLight shines from its position toward the origin with no
// attenuation, like the sun.
type DirectionalLight struct {
	IntensityLight
}

// NewDirectionalLight returns a new [DirectionalLight] with default field values.
func NewDirectionalLight() *DirectionalLight {
	lt := &DirectionalLight{}
	lt.intensityDefaults()
	lt.initView("DirectionalLight")
	lt.initModel("Object3dModel")
	return lt
}

// PointLight is an omnidirectional light with a falloff distance.
type PointLight struct {
	IntensityLight

	Distance float32
}

// NewPointLight returns a new [PointLight] with default field values.
func NewPointLight() *PointLight {
	lt := &PointLight{}
	lt.pointDefaults()
	lt.initView("PointLight")
	lt.initModel("Object3dModel")
	return lt
}

func (lt *PointLight) pointDefaults() {
	lt.intensityDefaults()
	lt.Distance = 10
}

// SetDistance sets [PointLight.Distance] and records the change.
func (lt *PointLight) SetDistance(v float32) *PointLight {
	lt.Distance = v
	lt.Send("distance", v)
	return lt
}

// SpotLight is a point light restricted to a cone.
type SpotLight struct {
	PointLight

	Angle    float32
	Exponent float32
}

// NewSpotLight returns a new [SpotLight] with default field values.
func NewSpotLight() *SpotLight {
	lt := &SpotLight{}
	lt.pointDefaults()
	lt.Angle = 10
	lt.Exponent = 0.5
	lt.initView("SpotLight")
	lt.initModel("Object3dModel")
	return lt
}

// SetAngle sets [SpotLight.Angle] and records the change.
func (lt *SpotLight) SetAngle(v float32) *SpotLight {
	lt.Angle = v
	lt.Send("angle", v)
	return lt
}

// SetExponent sets [SpotLight.Exponent] and records the change.
func (lt *SpotLight) SetExponent(v float32) *SpotLight {
	lt.Exponent = v
	lt.Send("exponent", v)
	return lt
}
