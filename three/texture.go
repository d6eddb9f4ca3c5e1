// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import "github.com/solomonvimal/pythreejs/colors"

// Texture is the interface for all texture descriptors. Materials
// reference textures by shared reference; the actual texel data is
// produced or loaded by the front end.
type Texture interface {
	Entity

	// AsTextureBase returns the [TextureBase] of this texture.
	AsTextureBase() *TextureBase
}

// TextureBase provides the core implementation of the [Texture] interface.
type TextureBase struct {
	Base
}

func (t *TextureBase) AsTextureBase() *TextureBase {
	return t
}

// ImageTexture is a texture loaded by the front end from a URI,
// which can be a data URL or a web URL.
type ImageTexture struct {
	TextureBase

	// ImageURI locates the image; a data URL or a web URL.
	ImageURI string
}

// NewImageTexture returns a new [ImageTexture] with default field values.
func NewImageTexture() *ImageTexture {
	t := &ImageTexture{}
	t.initView("ImageTextureView")
	return t
}

// SetImageURI sets [ImageTexture.ImageURI] and records the change.
func (t *ImageTexture) SetImageURI(v string) *ImageTexture {
	t.ImageURI = v
	t.Send("imageuri", v)
	return t
}

// DataTexture is a texture built directly from an array of texel
// component values.
type DataTexture struct {
	TextureBase

	// Data holds the raw texel component values, flattened.
	Data []int

	Format     TextureFormat
	Width      int
	Height     int
	Type       TextureType
	Mapping    Mapping
	WrapS      Wrapping
	WrapT      Wrapping
	MagFilter  Filter
	MinFilter  Filter
	Anisotropy int
}

// NewDataTexture returns a new [DataTexture] with default field
// values: a 256x256 RGBA byte texture.
func NewDataTexture() *DataTexture {
	t := &DataTexture{
		Format:     RGBAFormat,
		Width:      256,
		Height:     256,
		Type:       UnsignedByteType,
		Mapping:    UVMapping,
		WrapS:      ClampToEdgeWrapping,
		WrapT:      ClampToEdgeWrapping,
		MagFilter:  LinearFilter,
		MinFilter:  NearestFilter,
		Anisotropy: 1,
	}
	t.initView("DataTextureView")
	return t
}

// SetData sets [DataTexture.Data] and records the change.
func (t *DataTexture) SetData(v []int) *DataTexture {
	t.Data = v
	t.Send("data", v)
	return t
}

// SetFormat sets [DataTexture.Format] and records the change.
func (t *DataTexture) SetFormat(v TextureFormat) *DataTexture {
	t.Format = v
	t.Send("format", v.String())
	return t
}

// SetWidth sets [DataTexture.Width] and records the change.
func (t *DataTexture) SetWidth(v int) *DataTexture {
	t.Width = v
	t.Send("width", v)
	return t
}

// SetHeight sets [DataTexture.Height] and records the change.
func (t *DataTexture) SetHeight(v int) *DataTexture {
	t.Height = v
	t.Send("height", v)
	return t
}

// SetType sets [DataTexture.Type] and records the change.
func (t *DataTexture) SetType(v TextureType) *DataTexture {
	t.Type = v
	t.Send("type", v.String())
	return t
}

// SetMapping sets [DataTexture.Mapping] and records the change.
func (t *DataTexture) SetMapping(v Mapping) *DataTexture {
	t.Mapping = v
	t.Send("mapping", v.String())
	return t
}

// SetWrapS sets [DataTexture.WrapS] and records the change.
func (t *DataTexture) SetWrapS(v Wrapping) *DataTexture {
	t.WrapS = v
	t.Send("wrapS", v.String())
	return t
}

// SetWrapT sets [DataTexture.WrapT] and records the change.
func (t *DataTexture) SetWrapT(v Wrapping) *DataTexture {
	t.WrapT = v
	t.Send("wrapT", v.String())
	return t
}

// SetMagFilter sets [DataTexture.MagFilter] and records the change.
func (t *DataTexture) SetMagFilter(v Filter) *DataTexture {
	t.MagFilter = v
	t.Send("magFilter", v.String())
	return t
}

// SetMinFilter sets [DataTexture.MinFilter] and records the change.
func (t *DataTexture) SetMinFilter(v Filter) *DataTexture {
	t.MinFilter = v
	t.Send("minFilter", v.String())
	return t
}

// SetAnisotropy sets [DataTexture.Anisotropy] and records the change.
func (t *DataTexture) SetAnisotropy(v int) *DataTexture {
	t.Anisotropy = v
	t.Send("anisotropy", v)
	return t
}

// TextTexture is a texture rendered by the front end from a string.
type TextTexture struct {
	TextureBase

	FontFace string
	Size     int
	Color    colors.Color

	// Text is the string rendered into the texture.
	Text string

	// SquareTexture pads the rendered text to a square image.
	SquareTexture bool
}

// NewTextTexture returns a new [TextTexture] with default field
// values: 12pt black Arial on a square texture.
func NewTextTexture() *TextTexture {
	t := &TextTexture{FontFace: "Arial", Size: 12, Color: colors.FromString("black"), SquareTexture: true}
	t.initView("TextTextureView")
	return t
}

// SetFontFace sets [TextTexture.FontFace] and records the change.
func (t *TextTexture) SetFontFace(v string) *TextTexture {
	t.FontFace = v
	t.Send("fontFace", v)
	return t
}

// SetSize sets [TextTexture.Size] and records the change.
func (t *TextTexture) SetSize(v int) *TextTexture {
	t.Size = v
	t.Send("size", v)
	return t
}

// SetColor validates and sets [TextTexture.Color], recording the
// change; see [colors.From] for the accepted forms.
func (t *TextTexture) SetColor(val any) error {
	c, err := colors.From(val)
	if err != nil {
		return err
	}
	t.Color = c
	t.Send("color", c.Value())
	return nil
}

// SetText sets [TextTexture.Text] and records the change.
func (t *TextTexture) SetText(v string) *TextTexture {
	t.Text = v
	t.Send("string", v)
	return t
}

// SetSquareTexture sets [TextTexture.SquareTexture] and records the change.
func (t *TextTexture) SetSquareTexture(v bool) *TextTexture {
	t.SquareTexture = v
	t.Send("squareTexture", v)
	return t
}
