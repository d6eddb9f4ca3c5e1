// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the canonical color value used by the
// scene-graph object model, and validation of the inputs that
// produce it.
//
// The canonical form is either a CSS-style color string (including
// the "rgb(r,g,b)" functional form, "#hex" forms, and named colors)
// or an integer color value such as 0xff0000. Strings are passed
// through unvalidated: the front-end renderer resolves them.
package colors

import (
	"fmt"
	"image/color"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is the canonical color value synchronized to the front end:
// either a CSS-style color string or an integer color value.
// Use [From] to construct one from the accepted input forms.
type Color struct {

	// Str is the string form, when IsInt is false.
	Str string

	// Int is the integer form, when IsInt is true.
	Int int

	// IsInt is whether the integer form is the active one.
	IsInt bool
}

// FromString returns a Color holding the given string, passed through
// unchanged. Named, #hex and functional CSS syntax are all resolved
// downstream by the renderer.
func FromString(s string) Color {
	return Color{Str: s}
}

// FromInt returns a Color holding the given integer color value,
// e.g., 0xff0000 for red.
func FromInt(i int) Color {
	return Color{Int: i, IsInt: true}
}

// FromRGB returns a Color in the canonical "rgb(r,g,b)" string form.
// Each component is truncated toward zero to an integer; no range
// clamping is performed.
func FromRGB(r, g, b float64) Color {
	return Color{Str: fmt.Sprintf("rgb(%d,%d,%d)", int(r), int(g), int(b))}
}

// From validates and canonicalizes the given color input. It accepts:
//   - a 3-element numeric slice or array, formatted as "rgb(r,g,b)"
//     with each component truncated toward zero;
//   - a string, passed through unchanged;
//   - any value convertible to an integer.
//
// Anything else is a validation error.
func From(val any) (Color, error) {
	switch v := val.(type) {
	case Color:
		return v, nil
	case string:
		return FromString(v), nil
	case []float64:
		if len(v) == 3 {
			return FromRGB(v[0], v[1], v[2]), nil
		}
	case []float32:
		if len(v) == 3 {
			return FromRGB(float64(v[0]), float64(v[1]), float64(v[2])), nil
		}
	case []int:
		if len(v) == 3 {
			return FromRGB(float64(v[0]), float64(v[1]), float64(v[2])), nil
		}
	case int:
		return FromInt(v), nil
	case int32:
		return FromInt(int(v)), nil
	case int64:
		return FromInt(int(v)), nil
	case uint32:
		return FromInt(int(v)), nil
	case float32:
		return FromInt(int(v)), nil
	case float64:
		return FromInt(int(v)), nil
	default:
		rv := reflect.ValueOf(val)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if rv.Len() == 3 && rv.Index(0).CanFloat() {
				return FromRGB(rv.Index(0).Float(), rv.Index(1).Float(), rv.Index(2).Float()), nil
			}
			if rv.Len() == 3 && rv.Index(0).CanInt() {
				return FromRGB(float64(rv.Index(0).Int()), float64(rv.Index(1).Int()), float64(rv.Index(2).Int())), nil
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return FromInt(int(rv.Int())), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return FromInt(int(rv.Uint())), nil
		}
	}
	return Color{}, fmt.Errorf("colors.From: %v (%T) is not a valid color: need an rgb triple, a string, or an integer", val, val)
}

// String returns the wire form of the color: the string itself,
// or the decimal form of the integer value.
func (c Color) String() string {
	if c.IsInt {
		return strconv.Itoa(c.Int)
	}
	return c.Str
}

// Value returns the value pushed across the sync boundary:
// either the string or the integer.
func (c Color) Value() any {
	if c.IsInt {
		return c.Int
	}
	return c.Str
}

// MarshalJSON emits the wire value: a JSON string or a JSON number.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.IsInt {
		return []byte(strconv.Itoa(c.Int)), nil
	}
	return []byte(strconv.Quote(c.Str)), nil
}

// UnmarshalJSON reads either a JSON string or a JSON number.
func (c *Color) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) > 0 && s[0] == '"' {
		us, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		*c = FromString(us)
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("colors.Color: cannot unmarshal %s", s)
	}
	*c = FromInt(i)
	return nil
}

// RGBA resolves the canonical form to a concrete [color.RGBA] for
// local consumers such as the colormap helper. It handles the integer
// form, "rgb(r,g,b)" syntax, "#hex" forms, and CSS named colors.
// This is a local convenience only: the canonical form is never
// altered by resolution, and strings this cannot resolve may still be
// valid for the front-end renderer.
func (c Color) RGBA() (color.RGBA, error) {
	if c.IsInt {
		return color.RGBA{uint8(c.Int >> 16), uint8(c.Int >> 8), uint8(c.Int), 0xFF}, nil
	}
	s := strings.TrimSpace(c.Str)
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("colors.RGBA: empty color")
	case s[0] == '#':
		return parseHex(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s)
	}
	nc, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.RGBA: name not found: %v", s)
	}
	return nc, nil
}

// parseHex parses #RGB, #RRGGBB, and #RRGGBBAA forms.
func parseHex(x string) (color.RGBA, error) {
	x = strings.TrimPrefix(x, "#")
	var r, g, b int
	a := 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.RGBA: could not process hex color: %v", x)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

func parseRGBFunc(s string) (color.RGBA, error) {
	inner := s[len("rgb(") : len(s)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("colors.RGBA: could not process rgb() color: %v", s)
	}
	var comps [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.RGBA: could not process rgb() color: %v: %w", s, err)
		}
		comps[i] = n
	}
	return color.RGBA{uint8(comps[0]), uint8(comps[1]), uint8(comps[2]), 0xFF}, nil
}
