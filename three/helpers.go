// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/solomonvimal/pythreejs/colors"
	"github.com/solomonvimal/pythreejs/math32"
	"github.com/solomonvimal/pythreejs/math32/minmax"
)

// LightsColor returns a standard rig of one ambient and four
// directional lights with contrasting colors.
func LightsColor() []Node {
	amb := NewAmbientLight()
	amb.Color = colors.FromRGB(0.312, 0.188, 0.4)
	return []Node{
		amb,
		dirLight(math32.Vec3(1, 0, 1), colors.FromRGB(0.8, 0, 0)),
		dirLight(math32.Vec3(1, 1, 1), colors.FromRGB(0, 0.8, 0)),
		dirLight(math32.Vec3(0, 1, 1), colors.FromRGB(0, 0, 0.8)),
		dirLight(math32.Vec3(-1, -1, -1), colors.FromRGB(0.9, 0.7, 0.9)),
	}
}

// LightsGray returns a standard rig of one ambient and four
// directional gray lights.
func LightsGray() []Node {
	amb := NewAmbientLight()
	amb.Color = colors.FromRGB(0.6, 0.6, 0.6)
	return []Node{
		amb,
		dirLight(math32.Vec3(0, 1, 1), colors.FromRGB(0.5, 0.5, 0.5)),
		dirLight(math32.Vec3(0, 0, 1), colors.FromRGB(0.5, 0.5, 0.5)),
		dirLight(math32.Vec3(1, 1, 1), colors.FromRGB(0.5, 0.5, 0.5)),
		dirLight(math32.Vec3(-1, -1, -1), colors.FromRGB(0.7, 0.7, 0.7)),
	}
}

func dirLight(pos math32.Vector3, clr colors.Color) *DirectionalLight {
	lt := NewDirectionalLight()
	lt.Position = pos
	lt.Color = clr
	return lt
}

// MakeText returns a text billboard: a [Sprite] at the given position
// with the given height, textured with the rendered text.
func MakeText(text string, position math32.Vector3, height float32) *Sprite {
	tx := NewTextTexture()
	tx.Text = text
	tx.Color = colors.FromString("white")
	tx.Size = 100
	tx.SquareTexture = false
	sm := NewSpriteMaterial()
	sm.Map = tx
	sp := NewSprite()
	sp.Material = sm
	sp.Position = position
	sp.ScaleToTexture = true
	sp.Scale = math32.Vec3(1, height, 1)
	return sp
}

// Colormap is a sequence of evenly spaced color stops, linearly
// interpolated over [0, 1].
type Colormap []color.RGBA

// At returns the interpolated color at t, which is clamped to [0, 1].
func (cm Colormap) At(t float32) color.RGBA {
	if len(cm) == 0 {
		return color.RGBA{}
	}
	if len(cm) == 1 {
		return cm[0]
	}
	t = math32.Clamp(t, 0, 1)
	f := t * float32(len(cm)-1)
	i := int(math32.Floor(f))
	if i >= len(cm)-1 {
		return cm[len(cm)-1]
	}
	a, b := cm[i], cm[i+1]
	r := f - float32(i)
	return color.RGBA{
		R: lerpByte(a.R, b.R, r),
		G: lerpByte(a.G, b.G, r),
		B: lerpByte(a.B, b.B, r),
		A: lerpByte(a.A, b.A, r),
	}
}

// Reversed returns this colormap with the stop order reversed.
func (cm Colormap) Reversed() Colormap {
	rev := make(Colormap, len(cm))
	for i, c := range cm {
		rev[len(cm)-1-i] = c
	}
	return rev
}

func lerpByte(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}

// mustColor resolves a color constant through the [colors] package,
// for the built-in colormap tables.
func mustColor(s string) color.RGBA {
	c, err := colors.FromString(s).RGBA()
	if err != nil {
		panic(err)
	}
	return c
}

// ylGnBu is the yellow-green-blue colormap commonly used for height
// and density fields.
var ylGnBu = Colormap{
	mustColor("#ffffd9"),
	mustColor("#edf8b1"),
	mustColor("#c7e9b4"),
	mustColor("#7fcdbb"),
	mustColor("#41b6c4"),
	mustColor("#1d91c0"),
	mustColor("#225ea8"),
	mustColor("#253494"),
	mustColor("#081d58"),
}

// Colormaps holds the built-in named colormaps usable with
// [HeightTexture]. The "_r" suffix reverses the stop order.
var Colormaps = map[string]Colormap{
	"YlGnBu":   ylGnBu,
	"YlGnBu_r": ylGnBu.Reversed(),
	"gray":     {mustColor("black"), mustColor("white")},
	"gray_r":   {mustColor("white"), mustColor("black")},
}

// DefaultColormap is the colormap used when HeightTexture is given an
// empty name.
const DefaultColormap = "YlGnBu_r"

// HeightTexture builds a colorized [DataTexture] from the given 2D
// height array and named colormap. Heights are rescaled to [0, 1];
// NaN values map to the lowest stop, as does a constant field. The
// rows of z must all have the same length.
func HeightTexture(z [][]float32, colormap string) (*DataTexture, error) {
	if colormap == "" {
		colormap = DefaultColormap
	}
	cm, ok := Colormaps[colormap]
	if !ok {
		err := fmt.Errorf("three.HeightTexture: unknown colormap %q", colormap)
		slog.Error("HeightTexture: bad colormap", "colormap", colormap)
		return nil, err
	}
	if len(z) == 0 || len(z[0]) == 0 {
		return nil, fmt.Errorf("three.HeightTexture: height array is empty")
	}
	width := len(z[0])
	var rng minmax.F32
	rng.SetInfinity()
	for _, row := range z {
		if len(row) != width {
			return nil, fmt.Errorf("three.HeightTexture: ragged height array: row length %d != %d", len(row), width)
		}
		for _, h := range row {
			if !math32.IsNaN(h) {
				rng.FitValInRange(h)
			}
		}
	}
	data := make([]int, 0, len(z)*width*4)
	for _, row := range z {
		for _, h := range row {
			t := float32(0)
			if !math32.IsNaN(h) {
				t = rng.NormValue(h)
			}
			c := cm.At(t)
			data = append(data, int(c.R), int(c.G), int(c.B), int(c.A))
		}
	}
	tx := NewDataTexture()
	tx.SetData(data)
	tx.SetFormat(RGBAFormat)
	tx.SetWidth(width)
	tx.SetHeight(len(z))
	return tx, nil
}
