// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import "github.com/solomonvimal/pythreejs/colors"

// Scene is the root of the scene graph: an [Object3d] whose children
// are everything to render.
type Scene struct {
	Object3d
}

// NewScene returns a new empty [Scene].
func NewScene() *Scene {
	sc := &Scene{}
	sc.Defaults()
	sc.initView("SceneView")
	sc.initModel("Object3dModel")
	return sc
}

// Effect is a whole-image post-processing effect applied by the
// renderer.
type Effect struct {
	Base
}

// AnaglyphEffect renders a red/cyan stereo image.
type AnaglyphEffect struct {
	Effect
}

// NewAnaglyphEffect returns a new [AnaglyphEffect].
func NewAnaglyphEffect() *AnaglyphEffect {
	ef := &AnaglyphEffect{}
	ef.ViewModule = DefaultModule
	ef.ViewName = "AnaglyphEffectView"
	return ef
}

// Renderer composes a [Scene], a [Camera], interaction [Controls] and
// an optional [Effect] into a rendered viewport of the given size.
// All composition is by shared reference.
type Renderer struct {
	Base

	Width        int
	Height       int
	RendererType RendererType
	Scene        *Scene
	Camera       Node
	Controls     []Entity
	Effect       *AnaglyphEffect
	Background   colors.Color
}

// NewRenderer returns a new [Renderer] of the given scene and camera
// with default field values: 600x400, automatic back end, black
// background.
func NewRenderer(scene *Scene, camera Node) *Renderer {
	r := &Renderer{Width: 600, Height: 400, Scene: scene, Camera: camera}
	r.Background = colors.FromString("black")
	r.initView("RendererView")
	r.initModel("RendererModel")
	return r
}

// SetWidth sets [Renderer.Width] and records the change.
func (r *Renderer) SetWidth(v int) *Renderer {
	r.Width = v
	r.Send("width", v)
	return r
}

// SetHeight sets [Renderer.Height] and records the change.
func (r *Renderer) SetHeight(v int) *Renderer {
	r.Height = v
	r.Send("height", v)
	return r
}

// SetRendererType sets [Renderer.RendererType] and records the change.
func (r *Renderer) SetRendererType(v RendererType) *Renderer {
	r.RendererType = v
	r.Send("renderer_type", v.String())
	return r
}

// SetScene sets [Renderer.Scene] and records the change.
func (r *Renderer) SetScene(v *Scene) *Renderer {
	r.Scene = v
	r.Send("scene", v)
	return r
}

// SetCamera sets [Renderer.Camera] and records the change.
func (r *Renderer) SetCamera(v Node) *Renderer {
	r.Camera = v
	r.Send("camera", v)
	return r
}

// SetControls replaces the controls list and records the change.
func (r *Renderer) SetControls(v ...Entity) *Renderer {
	r.Controls = v
	r.Send("controls", r.Controls)
	return r
}

// SetEffect sets [Renderer.Effect] and records the change.
func (r *Renderer) SetEffect(v *AnaglyphEffect) *Renderer {
	r.Effect = v
	r.Send("effect", v)
	return r
}

// SetBackground validates and sets [Renderer.Background], recording
// the change; see [colors.From] for the accepted forms.
func (r *Renderer) SetBackground(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	r.Background = c
	r.Send("background", c.Value())
	return nil
}
