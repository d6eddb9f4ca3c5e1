// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"fmt"
	"strconv"
)

// The enums below are closed sets whose String form is the exact
// three.js constant name, which is the value synchronized to the
// front end.

func enumString[T ~int32](i T, names []string) string {
	if int(i) < 0 || int(i) >= len(names) {
		return strconv.Itoa(int(i))
	}
	return names[i]
}

func enumSetString[T ~int32](p *T, s string, names []string, typeName string) error {
	for i, n := range names {
		if n == s {
			*p = T(i)
			return nil
		}
	}
	return fmt.Errorf("three: %q is not a valid %s value", s, typeName)
}

// Side determines which side of faces a material renders.
type Side int32

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

var sideNames = []string{"FrontSide", "BackSide", "DoubleSide"}

func (e Side) String() string { return enumString(e, sideNames) }

// SetString sets the value from its three.js constant name,
// returning an error for an unrecognized name.
func (e *Side) SetString(s string) error { return enumSetString(e, s, sideNames, "Side") }

// Blending is the material blending mode.
type Blending int32

const (
	NoBlending Blending = iota
	NormalBlending
	AdditiveBlending
	SubtractiveBlending
	MultiplyBlending
	CustomBlending
)

var blendingNames = []string{"NoBlending", "NormalBlending", "AdditiveBlending",
	"SubtractiveBlending", "MultiplyBlending", "CustomBlending"}

func (e Blending) String() string { return enumString(e, blendingNames) }

func (e *Blending) SetString(s string) error {
	return enumSetString(e, s, blendingNames, "Blending")
}

// BlendFactor is a source or destination blending factor.
type BlendFactor int32

const (
	ZeroFactor BlendFactor = iota
	OneFactor
	SrcColorFactor
	OneMinusSrcColorFactor
	SrcAlphaFactor
	OneMinusSrcAlphaFactor
	DstAlphaFactor
	OneMinusDstAlphaFactor
	DstColorFactor
	OneMinusDstColorFactor
	SrcAlphaSaturateFactor
)

var blendFactorNames = []string{"ZeroFactor", "OneFactor", "SrcColorFactor",
	"OneMinusSrcColorFactor", "SrcAlphaFactor", "OneMinusSrcAlphaFactor",
	"DstAlphaFactor", "OneMinusDstAlphaFactor", "DstColorFactor",
	"OneMinusDstColorFactor", "SrcAlphaSaturateFactor"}

func (e BlendFactor) String() string { return enumString(e, blendFactorNames) }

func (e *BlendFactor) SetString(s string) error {
	return enumSetString(e, s, blendFactorNames, "BlendFactor")
}

// BlendEquation is the blending equation applied between the source
// and destination factors.
type BlendEquation int32

const (
	AddEquation BlendEquation = iota
	SubtractEquation
	ReverseSubtractEquation
)

var blendEquationNames = []string{"AddEquation", "SubtractEquation", "ReverseSubtractEquation"}

func (e BlendEquation) String() string { return enumString(e, blendEquationNames) }

func (e *BlendEquation) SetString(s string) error {
	return enumSetString(e, s, blendEquationNames, "BlendEquation")
}

// Shading is the surface shading model.
type Shading int32

const (
	SmoothShading Shading = iota
	FlatShading
	NoShading
)

var shadingNames = []string{"SmoothShading", "FlatShading", "NoShading"}

func (e Shading) String() string { return enumString(e, shadingNames) }

func (e *Shading) SetString(s string) error {
	return enumSetString(e, s, shadingNames, "Shading")
}

// VertexColorMode selects where per-vertex colors come from.
type VertexColorMode int32

const (
	NoColors VertexColorMode = iota
	FaceColors
	VertexColors
)

var vertexColorNames = []string{"NoColors", "FaceColors", "VertexColors"}

func (e VertexColorMode) String() string { return enumString(e, vertexColorNames) }

func (e *VertexColorMode) SetString(s string) error {
	return enumSetString(e, s, vertexColorNames, "VertexColorMode")
}

// Combine is how an environment map combines with the surface color.
type Combine int32

const (
	MultiplyOperation Combine = iota
	MixOperation
	AddOperation
)

var combineNames = []string{"MultiplyOperation", "MixOperation", "AddOperation"}

func (e Combine) String() string { return enumString(e, combineNames) }

func (e *Combine) SetString(s string) error {
	return enumSetString(e, s, combineNames, "Combine")
}

// TextureFormat is the pixel format of a texture.
type TextureFormat int32

const (
	RGBAFormat TextureFormat = iota
	AlphaFormat
	RGBFormat
	LuminanceFormat
	LuminanceAlphaFormat
)

var textureFormatNames = []string{"RGBAFormat", "AlphaFormat", "RGBFormat",
	"LuminanceFormat", "LuminanceAlphaFormat"}

func (e TextureFormat) String() string { return enumString(e, textureFormatNames) }

func (e *TextureFormat) SetString(s string) error {
	return enumSetString(e, s, textureFormatNames, "TextureFormat")
}

// TextureType is the data type of texture texels.
type TextureType int32

const (
	UnsignedByteType TextureType = iota
	ByteType
	ShortType
	UnsignedShortType
	IntType
	UnsignedIntType
	FloatType
	UnsignedShort4444Type
	UnsignedShort5551Type
	UnsignedShort565Type
)

var textureTypeNames = []string{"UnsignedByteType", "ByteType", "ShortType",
	"UnsignedShortType", "IntType", "UnsignedIntType", "FloatType",
	"UnsignedShort4444Type", "UnsignedShort5551Type", "UnsignedShort565Type"}

func (e TextureType) String() string { return enumString(e, textureTypeNames) }

func (e *TextureType) SetString(s string) error {
	return enumSetString(e, s, textureTypeNames, "TextureType")
}

// Mapping is the texture coordinate mapping mode.
type Mapping int32

const (
	UVMapping Mapping = iota
	CubeReflectionMapping
	CubeRefractionMapping
	SphericalReflectionMapping
	SphericalRefractionMapping
)

var mappingNames = []string{"UVMapping", "CubeReflectionMapping", "CubeRefractionMapping",
	"SphericalReflectionMapping", "SphericalRefractionMapping"}

func (e Mapping) String() string { return enumString(e, mappingNames) }

func (e *Mapping) SetString(s string) error {
	return enumSetString(e, s, mappingNames, "Mapping")
}

// Wrapping is the texture wrapping mode along one axis.
type Wrapping int32

const (
	ClampToEdgeWrapping Wrapping = iota
	RepeatWrapping
	MirroredRepeatWrapping
)

var wrappingNames = []string{"ClampToEdgeWrapping", "RepeatWrapping", "MirroredRepeatWrapping"}

func (e Wrapping) String() string { return enumString(e, wrappingNames) }

func (e *Wrapping) SetString(s string) error {
	return enumSetString(e, s, wrappingNames, "Wrapping")
}

// Filter is a texture minification / magnification filter.
// Magnification only uses NearestFilter and LinearFilter.
type Filter int32

const (
	NearestFilter Filter = iota
	NearestMipMapNearestFilter
	NearestMipMapLinearFilter
	LinearFilter
	LinearMipMapNearestFilter
)

var filterNames = []string{"NearestFilter", "NearestMipMapNearestFilter",
	"NearestMipMapLinearFilter", "LinearFilter", "LinearMipMapNearestFilter"}

func (e Filter) String() string { return enumString(e, filterNames) }

func (e *Filter) SetString(s string) error {
	return enumSetString(e, s, filterNames, "Filter")
}

// LineType is how line vertices are connected.
type LineType int32

const (
	LineStrip LineType = iota
	LinePieces
)

var lineTypeNames = []string{"LineStrip", "LinePieces"}

func (e LineType) String() string { return enumString(e, lineTypeNames) }

func (e *LineType) SetString(s string) error {
	return enumSetString(e, s, lineTypeNames, "LineType")
}

// RendererType selects the front-end rendering back end.
type RendererType int32

const (
	AutoRenderer RendererType = iota
	WebGLRenderer
	CanvasRenderer
)

var rendererTypeNames = []string{"auto", "webgl", "canvas"}

func (e RendererType) String() string { return enumString(e, rendererTypeNames) }

func (e *RendererType) SetString(s string) error {
	return enumSetString(e, s, rendererTypeNames, "RendererType")
}
