// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import "github.com/solomonvimal/pythreejs/colors"

// Material is the interface for all surface-appearance descriptors.
// A material may reference zero or more [Texture]s by shared
// reference; no exclusivity is enforced.
type Material interface {
	Entity

	// AsMaterialBase returns the [MaterialBase] of this material.
	AsMaterialBase() *MaterialBase
}

// MaterialBase provides the blending, depth and visibility parameters
// common to every material.
type MaterialBase struct {
	Base

	Name                string
	Side                Side
	Opacity             float32
	Transparent         bool
	Blending            Blending
	BlendSrc            BlendFactor
	BlendDst            BlendFactor
	BlendEquation       BlendEquation
	DepthTest           bool
	DepthWrite          bool
	PolygonOffset       bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32
	AlphaTest           float32
	Overdraw            float32
	Visible             bool
	NeedsUpdate         bool
}

func (m *MaterialBase) AsMaterialBase() *MaterialBase {
	return m
}

// initMaterial sets the default parameter values shared by all
// materials and the view identification for the variant.
func (m *MaterialBase) initMaterial(viewName string) {
	m.Side = DoubleSide
	m.Opacity = 1
	m.Blending = NormalBlending
	m.BlendSrc = SrcAlphaFactor
	m.BlendDst = OneMinusDstColorFactor
	m.BlendEquation = AddEquation
	m.DepthTest = true
	m.DepthWrite = true
	m.PolygonOffset = true
	m.PolygonOffsetFactor = 1
	m.PolygonOffsetUnits = 1
	m.AlphaTest = 1
	m.Overdraw = 1
	m.Visible = true
	m.NeedsUpdate = true
	m.initView(viewName)
}

// SetName sets [MaterialBase.Name] and records the change.
func (m *MaterialBase) SetName(v string) *MaterialBase {
	m.Name = v
	m.Send("name", v)
	return m
}

// SetSide sets [MaterialBase.Side] and records the change.
func (m *MaterialBase) SetSide(v Side) *MaterialBase {
	m.Side = v
	m.Send("side", v.String())
	return m
}

// SetOpacity sets [MaterialBase.Opacity] and records the change.
func (m *MaterialBase) SetOpacity(v float32) *MaterialBase {
	m.Opacity = v
	m.Send("opacity", v)
	return m
}

// SetTransparent sets [MaterialBase.Transparent] and records the change.
func (m *MaterialBase) SetTransparent(v bool) *MaterialBase {
	m.Transparent = v
	m.Send("transparent", v)
	return m
}

// SetBlending sets [MaterialBase.Blending] and records the change.
func (m *MaterialBase) SetBlending(v Blending) *MaterialBase {
	m.Blending = v
	m.Send("blending", v.String())
	return m
}

// SetBlendSrc sets [MaterialBase.BlendSrc] and records the change.
func (m *MaterialBase) SetBlendSrc(v BlendFactor) *MaterialBase {
	m.BlendSrc = v
	m.Send("blendSrc", v.String())
	return m
}

// SetBlendDst sets [MaterialBase.BlendDst] and records the change.
func (m *MaterialBase) SetBlendDst(v BlendFactor) *MaterialBase {
	m.BlendDst = v
	m.Send("blendDst", v.String())
	return m
}

// SetBlendEquation sets [MaterialBase.BlendEquation] and records the change.
func (m *MaterialBase) SetBlendEquation(v BlendEquation) *MaterialBase {
	m.BlendEquation = v
	m.Send("blendEquation", v.String())
	return m
}

// SetDepthTest sets [MaterialBase.DepthTest] and records the change.
func (m *MaterialBase) SetDepthTest(v bool) *MaterialBase {
	m.DepthTest = v
	m.Send("depthTest", v)
	return m
}

// SetDepthWrite sets [MaterialBase.DepthWrite] and records the change.
func (m *MaterialBase) SetDepthWrite(v bool) *MaterialBase {
	m.DepthWrite = v
	m.Send("depthWrite", v)
	return m
}

// SetPolygonOffset sets [MaterialBase.PolygonOffset] and records the change.
func (m *MaterialBase) SetPolygonOffset(v bool) *MaterialBase {
	m.PolygonOffset = v
	m.Send("polygonOffset", v)
	return m
}

// SetPolygonOffsetFactor sets [MaterialBase.PolygonOffsetFactor] and records the change.
func (m *MaterialBase) SetPolygonOffsetFactor(v float32) *MaterialBase {
	m.PolygonOffsetFactor = v
	m.Send("polygonOffsetFactor", v)
	return m
}

// SetPolygonOffsetUnits sets [MaterialBase.PolygonOffsetUnits] and records the change.
func (m *MaterialBase) SetPolygonOffsetUnits(v float32) *MaterialBase {
	m.PolygonOffsetUnits = v
	m.Send("polygonOffsetUnits", v)
	return m
}

// SetAlphaTest sets [MaterialBase.AlphaTest] and records the change.
func (m *MaterialBase) SetAlphaTest(v float32) *MaterialBase {
	m.AlphaTest = v
	m.Send("alphaTest", v)
	return m
}

// SetOverdraw sets [MaterialBase.Overdraw] and records the change.
func (m *MaterialBase) SetOverdraw(v float32) *MaterialBase {
	m.Overdraw = v
	m.Send("overdraw", v)
	return m
}

// SetVisible sets [MaterialBase.Visible] and records the change.
func (m *MaterialBase) SetVisible(v bool) *MaterialBase {
	m.Visible = v
	m.Send("visible", v)
	return m
}

// SetNeedsUpdate sets [MaterialBase.NeedsUpdate] and records the change.
func (m *MaterialBase) SetNeedsUpdate(v bool) *MaterialBase {
	m.NeedsUpdate = v
	m.Send("needsUpdate", v)
	return m
}

// BasicMaterial is a flat-colored material unaffected by lights.
type BasicMaterial struct {
	MaterialBase

	Color              colors.Color
	Wireframe          bool
	WireframeLinewidth float32
	WireframeLinecap   string
	WireframeLinejoin  string
	Shading            Shading
	VertexColors       VertexColorMode
	Fog                bool

	// Texture references, shared with the textures owned elsewhere.
	Map         Texture
	LightMap    Texture
	SpecularMap Texture
	EnvMap      Texture

	Skinning     bool
	MorphTargets bool
}

// NewBasicMaterial returns a new [BasicMaterial] with default field values.
func NewBasicMaterial() *BasicMaterial {
	m := &BasicMaterial{}
	m.defaults("BasicMaterialView")
	m.initModel("BasicMaterialModel")
	return m
}

func (m *BasicMaterial) defaults(viewName string) {
	m.initMaterial(viewName)
	m.Color = colors.FromString("white")
	m.WireframeLinewidth = 1
	m.WireframeLinecap = "round"
	m.WireframeLinejoin = "round"
}

// SetColor validates and sets [BasicMaterial.Color], recording the
// change; see [colors.From] for the accepted forms.
func (m *BasicMaterial) SetColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Color = c
	m.Send("color", c.Value())
	return nil
}

// SetWireframe sets [BasicMaterial.Wireframe] and records the change.
func (m *BasicMaterial) SetWireframe(v bool) *BasicMaterial {
	m.Wireframe = v
	m.Send("wireframe", v)
	return m
}

// SetWireframeLinewidth sets [BasicMaterial.WireframeLinewidth] and records the change.
func (m *BasicMaterial) SetWireframeLinewidth(v float32) *BasicMaterial {
	m.WireframeLinewidth = v
	m.Send("wireframeLinewidth", v)
	return m
}

// SetWireframeLinecap sets [BasicMaterial.WireframeLinecap] and records the change.
func (m *BasicMaterial) SetWireframeLinecap(v string) *BasicMaterial {
	m.WireframeLinecap = v
	m.Send("wireframeLinecap", v)
	return m
}

// SetWireframeLinejoin sets [BasicMaterial.WireframeLinejoin] and records the change.
func (m *BasicMaterial) SetWireframeLinejoin(v string) *BasicMaterial {
	m.WireframeLinejoin = v
	m.Send("wireframeLinejoin", v)
	return m
}

// SetShading sets [BasicMaterial.Shading] and records the change.
func (m *BasicMaterial) SetShading(v Shading) *BasicMaterial {
	m.Shading = v
	m.Send("shading", v.String())
	return m
}

// SetVertexColors sets [BasicMaterial.VertexColors] and records the change.
func (m *BasicMaterial) SetVertexColors(v VertexColorMode) *BasicMaterial {
	m.VertexColors = v
	m.Send("vertexColors", v.String())
	return m
}

// SetFog sets [BasicMaterial.Fog] and records the change.
func (m *BasicMaterial) SetFog(v bool) *BasicMaterial {
	m.Fog = v
	m.Send("fog", v)
	return m
}

// SetMap sets [BasicMaterial.Map] and records the change.
func (m *BasicMaterial) SetMap(v Texture) *BasicMaterial {
	m.Map = v
	m.Send("map", v)
	return m
}

// SetLightMap sets [BasicMaterial.LightMap] and records the change.
func (m *BasicMaterial) SetLightMap(v Texture) *BasicMaterial {
	m.LightMap = v
	m.Send("lightMap", v)
	return m
}

// SetSpecularMap sets [BasicMaterial.SpecularMap] and records the change.
func (m *BasicMaterial) SetSpecularMap(v Texture) *BasicMaterial {
	m.SpecularMap = v
	m.Send("specularMap", v)
	return m
}

// SetEnvMap sets [BasicMaterial.EnvMap] and records the change.
func (m *BasicMaterial) SetEnvMap(v Texture) *BasicMaterial {
	m.EnvMap = v
	m.Send("envMap", v)
	return m
}

// SetSkinning sets [BasicMaterial.Skinning] and records the change.
func (m *BasicMaterial) SetSkinning(v bool) *BasicMaterial {
	m.Skinning = v
	m.Send("skinning", v)
	return m
}

// SetMorphTargets sets [BasicMaterial.MorphTargets] and records the change.
func (m *BasicMaterial) SetMorphTargets(v bool) *BasicMaterial {
	m.MorphTargets = v
	m.Send("morphTargets", v)
	return m
}

// LambertMaterial is a diffuse (Lambertian) lit material.
type LambertMaterial struct {
	BasicMaterial

	Ambient         colors.Color
	Emissive        colors.Color
	Reflectivity    float32
	RefractionRatio float32
	Combine         Combine
}

// NewLambertMaterial returns a new [LambertMaterial] with default field values.
func NewLambertMaterial() *LambertMaterial {
	m := &LambertMaterial{}
	m.defaults("LambertMaterialView")
	m.Ambient = colors.FromString("white")
	m.Emissive = colors.FromString("black")
	m.Reflectivity = 1
	m.RefractionRatio = 0.98
	return m
}

// SetAmbient validates and sets [LambertMaterial.Ambient], recording the change.
func (m *LambertMaterial) SetAmbient(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Ambient = c
	m.Send("ambient", c.Value())
	return nil
}

// SetEmissive validates and sets [LambertMaterial.Emissive], recording the change.
func (m *LambertMaterial) SetEmissive(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Emissive = c
	m.Send("emissive", c.Value())
	return nil
}

// SetReflectivity sets [LambertMaterial.Reflectivity] and records the change.
func (m *LambertMaterial) SetReflectivity(v float32) *LambertMaterial {
	m.Reflectivity = v
	m.Send("reflectivity", v)
	return m
}

// SetRefractionRatio sets [LambertMaterial.RefractionRatio] and records the change.
func (m *LambertMaterial) SetRefractionRatio(v float32) *LambertMaterial {
	m.RefractionRatio = v
	m.Send("refractionRatio", v)
	return m
}

// SetCombine sets [LambertMaterial.Combine] and records the change.
func (m *LambertMaterial) SetCombine(v Combine) *LambertMaterial {
	m.Combine = v
	m.Send("combine", v.String())
	return m
}

// PhongMaterial is a lit material with specular highlights.
type PhongMaterial struct {
	BasicMaterial

	Ambient         colors.Color
	Emissive        colors.Color
	Specular        colors.Color
	Shininess       float32
	Reflectivity    float32
	RefractionRatio float32
	Combine         Combine
}

// NewPhongMaterial returns a new [PhongMaterial] with default field values.
func NewPhongMaterial() *PhongMaterial {
	m := &PhongMaterial{}
	m.defaults("PhongMaterialView")
	m.Ambient = colors.FromString("white")
	m.Emissive = colors.FromString("black")
	m.Specular = colors.FromString("darkgray")
	m.Shininess = 30
	m.Reflectivity = 1
	m.RefractionRatio = 0.98
	return m
}

// SetAmbient validates and sets [PhongMaterial.Ambient], recording the change.
func (m *PhongMaterial) SetAmbient(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Ambient = c
	m.Send("ambient", c.Value())
	return nil
}

// SetEmissive validates and sets [PhongMaterial.Emissive], recording the change.
func (m *PhongMaterial) SetEmissive(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Emissive = c
	m.Send("emissive", c.Value())
	return nil
}

// SetSpecular validates and sets [PhongMaterial.Specular], recording the change.
func (m *PhongMaterial) SetSpecular(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Specular = c
	m.Send("specular", c.Value())
	return nil
}

// SetShininess sets [PhongMaterial.Shininess] and records the change.
func (m *PhongMaterial) SetShininess(v float32) *PhongMaterial {
	m.Shininess = v
	m.Send("shininess", v)
	return m
}

// SetReflectivity sets [PhongMaterial.Reflectivity] and records the change.
func (m *PhongMaterial) SetReflectivity(v float32) *PhongMaterial {
	m.Reflectivity = v
	m.Send("reflectivity", v)
	return m
}

// SetRefractionRatio sets [PhongMaterial.RefractionRatio] and records the change.
func (m *PhongMaterial) SetRefractionRatio(v float32) *PhongMaterial {
	m.RefractionRatio = v
	m.Send("refractionRatio", v)
	return m
}

// SetCombine sets [PhongMaterial.Combine] and records the change.
func (m *PhongMaterial) SetCombine(v Combine) *PhongMaterial {
	m.Combine = v
	m.Send("combine", v.String())
	return m
}

// DepthMaterial renders depth as grayscale.
type DepthMaterial struct {
	MaterialBase

	Wireframe          bool
	WireframeLinewidth float32
}

// NewDepthMaterial returns a new [DepthMaterial] with default field values.
func NewDepthMaterial() *DepthMaterial {
	m := &DepthMaterial{WireframeLinewidth: 1}
	m.initMaterial("DepthMaterialView")
	return m
}

// SetWireframe sets [DepthMaterial.Wireframe] and records the change.
func (m *DepthMaterial) SetWireframe(v bool) *DepthMaterial {
	m.Wireframe = v
	m.Send("wireframe", v)
	return m
}

// SetWireframeLinewidth sets [DepthMaterial.WireframeLinewidth] and records the change.
func (m *DepthMaterial) SetWireframeLinewidth(v float32) *DepthMaterial {
	m.WireframeLinewidth = v
	m.Send("wireframeLinewidth", v)
	return m
}

// LineMaterial is the interface for materials usable on [Line] and
// [SurfaceGrid] entities.
type LineMaterial interface {
	Material

	// isLineMaterial marks the closed set of line materials.
	isLineMaterial()
}

// LineBasicMaterial is a solid line material.
type LineBasicMaterial struct {
	MaterialBase

	Color        colors.Color
	Linewidth    float32
	Linecap      string
	Linejoin     string
	Fog          bool
	VertexColors VertexColorMode
}

func (m *LineBasicMaterial) isLineMaterial() {}

// NewLineBasicMaterial returns a new [LineBasicMaterial] with default field values.
func NewLineBasicMaterial() *LineBasicMaterial {
	m := &LineBasicMaterial{Linewidth: 1, Linecap: "round", Linejoin: "round"}
	m.Color = colors.FromString("white")
	m.initMaterial("LineBasicMaterialView")
	return m
}

// SetColor validates and sets [LineBasicMaterial.Color], recording the change.
func (m *LineBasicMaterial) SetColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Color = c
	m.Send("color", c.Value())
	return nil
}

// SetLinewidth sets [LineBasicMaterial.Linewidth] and records the change.
func (m *LineBasicMaterial) SetLinewidth(v float32) *LineBasicMaterial {
	m.Linewidth = v
	m.Send("linewidth", v)
	return m
}

// SetLinecap sets [LineBasicMaterial.Linecap] and records the change.
func (m *LineBasicMaterial) SetLinecap(v string) *LineBasicMaterial {
	m.Linecap = v
	m.Send("linecap", v)
	return m
}

// SetLinejoin sets [LineBasicMaterial.Linejoin] and records the change.
func (m *LineBasicMaterial) SetLinejoin(v string) *LineBasicMaterial {
	m.Linejoin = v
	m.Send("linejoin", v)
	return m
}

// SetFog sets [LineBasicMaterial.Fog] and records the change.
func (m *LineBasicMaterial) SetFog(v bool) *LineBasicMaterial {
	m.Fog = v
	m.Send("fog", v)
	return m
}

// SetVertexColors sets [LineBasicMaterial.VertexColors] and records the change.
func (m *LineBasicMaterial) SetVertexColors(v VertexColorMode) *LineBasicMaterial {
	m.VertexColors = v
	m.Send("vertexColors", v.String())
	return m
}

// LineDashedMaterial is a dashed line material.
type LineDashedMaterial struct {
	MaterialBase

	Color        colors.Color
	Linewidth    float32
	Scale        float32
	DashSize     float32
	GapSize      float32
	VertexColors VertexColorMode
	Fog          bool
}

func (m *LineDashedMaterial) isLineMaterial() {}

// NewLineDashedMaterial returns a new [LineDashedMaterial] with default field values.
func NewLineDashedMaterial() *LineDashedMaterial {
	m := &LineDashedMaterial{Linewidth: 1, Scale: 1, DashSize: 3, GapSize: 1}
	m.Color = colors.FromString("white")
	m.initMaterial("LineDashedMaterialView")
	return m
}

// SetColor validates and sets [LineDashedMaterial.Color], recording the change.
func (m *LineDashedMaterial) SetColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Color = c
	m.Send("color", c.Value())
	return nil
}

// SetLinewidth sets [LineDashedMaterial.Linewidth] and records the change.
func (m *LineDashedMaterial) SetLinewidth(v float32) *LineDashedMaterial {
	m.Linewidth = v
	m.Send("linewidth", v)
	return m
}

// SetScale sets [LineDashedMaterial.Scale] and records the change.
func (m *LineDashedMaterial) SetScale(v float32) *LineDashedMaterial {
	m.Scale = v
	m.Send("scale", v)
	return m
}

// SetDashSize sets [LineDashedMaterial.DashSize] and records the change.
func (m *LineDashedMaterial) SetDashSize(v float32) *LineDashedMaterial {
	m.DashSize = v
	m.Send("dashSize", v)
	return m
}

// SetGapSize sets [LineDashedMaterial.GapSize] and records the change.
func (m *LineDashedMaterial) SetGapSize(v float32) *LineDashedMaterial {
	m.GapSize = v
	m.Send("gapSize", v)
	return m
}

// SetVertexColors sets [LineDashedMaterial.VertexColors] and records the change.
func (m *LineDashedMaterial) SetVertexColors(v VertexColorMode) *LineDashedMaterial {
	m.VertexColors = v
	m.Send("vertexColors", v.String())
	return m
}

// SetFog sets [LineDashedMaterial.Fog] and records the change.
func (m *LineDashedMaterial) SetFog(v bool) *LineDashedMaterial {
	m.Fog = v
	m.Send("fog", v)
	return m
}

// NormalMaterial colors surfaces by their normal vectors.
type NormalMaterial struct {
	MaterialBase

	MorphTargets       bool
	Shading            Shading
	Wireframe          bool
	WireframeLinewidth float32
}

// NewNormalMaterial returns a new [NormalMaterial] with default field values.
func NewNormalMaterial() *NormalMaterial {
	m := &NormalMaterial{WireframeLinewidth: 1}
	m.initMaterial("NormalMaterialView")
	return m
}

// SetMorphTargets sets [NormalMaterial.MorphTargets] and records the change.
func (m *NormalMaterial) SetMorphTargets(v bool) *NormalMaterial {
	m.MorphTargets = v
	m.Send("morphTargets", v)
	return m
}

// SetShading sets [NormalMaterial.Shading] and records the change.
func (m *NormalMaterial) SetShading(v Shading) *NormalMaterial {
	m.Shading = v
	m.Send("shading", v.String())
	return m
}

// SetWireframe sets [NormalMaterial.Wireframe] and records the change.
func (m *NormalMaterial) SetWireframe(v bool) *NormalMaterial {
	m.Wireframe = v
	m.Send("wireframe", v)
	return m
}

// SetWireframeLinewidth sets [NormalMaterial.WireframeLinewidth] and records the change.
func (m *NormalMaterial) SetWireframeLinewidth(v float32) *NormalMaterial {
	m.WireframeLinewidth = v
	m.Send("wireframeLinewidth", v)
	return m
}

// ParticleSystemMaterial renders point sprites for particle systems.
type ParticleSystemMaterial struct {
	MaterialBase

	Color           colors.Color
	Map             Texture
	Size            float32
	SizeAttenuation bool
	VertexColors    bool
	Fog             bool
}

// NewParticleSystemMaterial returns a new [ParticleSystemMaterial] with default field values.
func NewParticleSystemMaterial() *ParticleSystemMaterial {
	m := &ParticleSystemMaterial{Size: 1}
	m.Color = colors.FromString("yellow")
	m.initMaterial("ParticleSystemMaterialView")
	m.initModel("ParticleSystemMaterialModel")
	return m
}

// SetColor validates and sets [ParticleSystemMaterial.Color], recording the change.
func (m *ParticleSystemMaterial) SetColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Color = c
	m.Send("color", c.Value())
	return nil
}

// SetMap sets [ParticleSystemMaterial.Map] and records the change.
func (m *ParticleSystemMaterial) SetMap(v Texture) *ParticleSystemMaterial {
	m.Map = v
	m.Send("map", v)
	return m
}

// SetSize sets [ParticleSystemMaterial.Size] and records the change.
func (m *ParticleSystemMaterial) SetSize(v float32) *ParticleSystemMaterial {
	m.Size = v
	m.Send("size", v)
	return m
}

// SetSizeAttenuation sets [ParticleSystemMaterial.SizeAttenuation] and records the change.
func (m *ParticleSystemMaterial) SetSizeAttenuation(v bool) *ParticleSystemMaterial {
	m.SizeAttenuation = v
	m.Send("sizeAttenuation", v)
	return m
}

// SetVertexColors sets [ParticleSystemMaterial.VertexColors] and records the change.
func (m *ParticleSystemMaterial) SetVertexColors(v bool) *ParticleSystemMaterial {
	m.VertexColors = v
	m.Send("vertexColors", v)
	return m
}

// SetFog sets [ParticleSystemMaterial.Fog] and records the change.
func (m *ParticleSystemMaterial) SetFog(v bool) *ParticleSystemMaterial {
	m.Fog = v
	m.Send("fog", v)
	return m
}

// ShaderMaterial runs custom vertex and fragment shader source on the
// front end.
type ShaderMaterial struct {
	MaterialBase

	FragmentShader     string
	VertexShader       string
	MorphTargets       bool
	Lights             bool
	MorphNormals       bool
	Wireframe          bool
	VertexColors       VertexColorMode
	Skinning           bool
	Fog                bool
	Shading            Shading
	Linewidth          float32
	WireframeLinewidth float32
}

// NewShaderMaterial returns a new [ShaderMaterial] with default field
// values: empty main functions for both shaders.
func NewShaderMaterial() *ShaderMaterial {
	m := &ShaderMaterial{
		FragmentShader:     "void main(){ }",
		VertexShader:       "void main(){ }",
		Linewidth:          1,
		WireframeLinewidth: 1,
	}
	m.initMaterial("ShaderMaterialView")
	return m
}

// SetFragmentShader sets [ShaderMaterial.FragmentShader] and records the change.
func (m *ShaderMaterial) SetFragmentShader(v string) *ShaderMaterial {
	m.FragmentShader = v
	m.Send("fragmentShader", v)
	return m
}

// SetVertexShader sets [ShaderMaterial.VertexShader] and records the change.
func (m *ShaderMaterial) SetVertexShader(v string) *ShaderMaterial {
	m.VertexShader = v
	m.Send("vertexShader", v)
	return m
}

// SetMorphTargets sets [ShaderMaterial.MorphTargets] and records the change.
func (m *ShaderMaterial) SetMorphTargets(v bool) *ShaderMaterial {
	m.MorphTargets = v
	m.Send("morphTargets", v)
	return m
}

// SetLights sets [ShaderMaterial.Lights] and records the change.
func (m *ShaderMaterial) SetLights(v bool) *ShaderMaterial {
	m.Lights = v
	m.Send("lights", v)
	return m
}

// SetMorphNormals sets [ShaderMaterial.MorphNormals] and records the change.
func (m *ShaderMaterial) SetMorphNormals(v bool) *ShaderMaterial {
	m.MorphNormals = v
	m.Send("morphNormals", v)
	return m
}

// SetWireframe sets [ShaderMaterial.Wireframe] and records the change.
func (m *ShaderMaterial) SetWireframe(v bool) *ShaderMaterial {
	m.Wireframe = v
	m.Send("wireframe", v)
	return m
}

// SetVertexColors sets [ShaderMaterial.VertexColors] and records the change.
func (m *ShaderMaterial) SetVertexColors(v VertexColorMode) *ShaderMaterial {
	m.VertexColors = v
	m.Send("vertexColors", v.String())
	return m
}

// SetSkinning sets [ShaderMaterial.Skinning] and records the change.
func (m *ShaderMaterial) SetSkinning(v bool) *ShaderMaterial {
	m.Skinning = v
	m.Send("skinning", v)
	return m
}

// SetFog sets [ShaderMaterial.Fog] and records the change.
func (m *ShaderMaterial) SetFog(v bool) *ShaderMaterial {
	m.Fog = v
	m.Send("fog", v)
	return m
}

// SetShading sets [ShaderMaterial.Shading] and records the change.
func (m *ShaderMaterial) SetShading(v Shading) *ShaderMaterial {
	m.Shading = v
	m.Send("shading", v.String())
	return m
}

// SetLinewidth sets [ShaderMaterial.Linewidth] and records the change.
func (m *ShaderMaterial) SetLinewidth(v float32) *ShaderMaterial {
	m.Linewidth = v
	m.Send("linewidth", v)
	return m
}

// SetWireframeLinewidth sets [ShaderMaterial.WireframeLinewidth] and records the change.
func (m *ShaderMaterial) SetWireframeLinewidth(v float32) *ShaderMaterial {
	m.WireframeLinewidth = v
	m.Send("wireframeLinewidth", v)
	return m
}

// SpriteMaterial textures screen-aligned sprites.
type SpriteMaterial struct {
	MaterialBase

	Map                  Texture
	UVScale              []float32
	SizeAttenuation      bool
	Color                colors.Color
	UVOffset             []float32
	Fog                  bool
	UseScreenCoordinates bool
	ScaleByViewport      bool
	Alignment            []float32
}

// NewSpriteMaterial returns a new [SpriteMaterial] with default field values.
func NewSpriteMaterial() *SpriteMaterial {
	m := &SpriteMaterial{}
	m.Color = colors.FromString("white")
	m.initMaterial("SpriteMaterialView")
	m.initModel("SpriteMaterialModel")
	return m
}

// SetMap sets [SpriteMaterial.Map] and records the change.
func (m *SpriteMaterial) SetMap(v Texture) *SpriteMaterial {
	m.Map = v
	m.Send("map", v)
	return m
}

// SetUVScale sets [SpriteMaterial.UVScale] and records the change.
func (m *SpriteMaterial) SetUVScale(v []float32) *SpriteMaterial {
	m.UVScale = v
	m.Send("uvScale", v)
	return m
}

// SetSizeAttenuation sets [SpriteMaterial.SizeAttenuation] and records the change.
func (m *SpriteMaterial) SetSizeAttenuation(v bool) *SpriteMaterial {
	m.SizeAttenuation = v
	m.Send("sizeAttenuation", v)
	return m
}

// SetColor validates and sets [SpriteMaterial.Color], recording the change.
func (m *SpriteMaterial) SetColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	m.Color = c
	m.Send("color", c.Value())
	return nil
}

// SetUVOffset sets [SpriteMaterial.UVOffset] and records the change.
func (m *SpriteMaterial) SetUVOffset(v []float32) *SpriteMaterial {
	m.UVOffset = v
	m.Send("uvOffset", v)
	return m
}

// SetFog sets [SpriteMaterial.Fog] and records the change.
func (m *SpriteMaterial) SetFog(v bool) *SpriteMaterial {
	m.Fog = v
	m.Send("fog", v)
	return m
}

// SetUseScreenCoordinates sets [SpriteMaterial.UseScreenCoordinates] and records the change.
func (m *SpriteMaterial) SetUseScreenCoordinates(v bool) *SpriteMaterial {
	m.UseScreenCoordinates = v
	m.Send("useScreenCoordinates", v)
	return m
}

// SetScaleByViewport sets [SpriteMaterial.ScaleByViewport] and records the change.
func (m *SpriteMaterial) SetScaleByViewport(v bool) *SpriteMaterial {
	m.ScaleByViewport = v
	m.Send("scaleByViewport", v)
	return m
}

// SetAlignment sets [SpriteMaterial.Alignment] and records the change.
func (m *SpriteMaterial) SetAlignment(v []float32) *SpriteMaterial {
	m.Alignment = v
	m.Send("alignment", v)
	return m
}
