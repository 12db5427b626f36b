// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and formatting helpers
// on top of the standard [color.Color] interface, along with
// HCT based transformations.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/tonalkit/matscheme/base/errors"
	"github.com/tonalkit/matscheme/colors/cam/hct"
	"github.com/tonalkit/matscheme/math32"
	"golang.org/x/image/colornames"
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// FromString accepts the following types of strings: hex values,
// rgb(r, g, b) and rgba(r, g, b, a), standard color names,
// or any of the following transformations, which use the
// base color as the starting point:
//   - inverse: inverse of the base color
//   - lighten-AMT or darken-AMT: changes the HCT tone by AMT
//   - highlight-AMT or samelight-AMT: lightens or darkens depending on the tone
//   - saturate-AMT or desaturate-AMT: changes the HCT chroma by AMT
//   - spin-AMT: changes the HCT hue by AMT degrees
//   - blend-PCT-color: blends PCT percent of the base with the given color
func FromString(str string, base color.Color) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 {
		return color.RGBA{}, errors.New("colors.FromString: empty color string")
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "rgb(") || strings.HasPrefix(lstr, "rgba("):
		return fromRGBFunc(lstr)
	}
	if c, err := FromName(lstr); err == nil {
		return c, nil
	}
	if lstr == "inverse" {
		if base == nil {
			return color.RGBA{}, errors.New("colors.FromString: base color must be provided for inverse color transformation")
		}
		return Inverse(base), nil
	}
	hidx := strings.Index(lstr, "-")
	if hidx <= 0 {
		return color.RGBA{}, fmt.Errorf("colors.FromString: unknown color %q", str)
	}
	if base == nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: base color must be provided for transformation %q", str)
	}
	cmd := lstr[:hidx]
	arg := lstr[hidx+1:]
	if cmd == "blend" {
		cidx := strings.Index(arg, "-")
		if cidx < 0 {
			return color.RGBA{}, fmt.Errorf("colors.FromString: blend color spec not found; format is: blend-PCT-color, got: %v", lstr)
		}
		pct, err := parseAmount(arg[:cidx])
		if err != nil {
			return color.RGBA{}, err
		}
		oth, err := FromString(arg[cidx+1:], base)
		if err != nil {
			return color.RGBA{}, err
		}
		return hct.Blend(pct, base, oth), nil
	}
	amt, err := parseAmount(arg)
	if err != nil {
		return color.RGBA{}, err
	}
	switch cmd {
	case "lighten":
		return hct.Lighten(base, amt), nil
	case "darken":
		return hct.Darken(base, amt), nil
	case "highlight":
		return hct.Highlight(base, amt), nil
	case "samelight":
		return hct.Samelight(base, amt), nil
	case "saturate":
		return hct.Saturate(base, amt), nil
	case "desaturate":
		return hct.Desaturate(base, amt), nil
	case "spin":
		return hct.Spin(base, amt), nil
	}
	return color.RGBA{}, fmt.Errorf("colors.FromString: unknown transformation %q", cmd)
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string, base color.Color) color.RGBA {
	return errors.Must1(FromString(str, base))
}

func parseAmount(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("colors.FromString: error getting amount from %q: %w", s, err)
	}
	return float32(v), nil
}

// fromRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a) strings,
// where a is either 0-1 or 0-255 and r, g, b are not premultiplied.
func fromRGBFunc(lstr string) (color.RGBA, error) {
	open := strings.Index(lstr, "(")
	val := strings.TrimSuffix(lstr[open+1:], ")")
	parts := strings.Split(val, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected 3 or 4 components in %q", lstr)
	}
	var ch [4]uint8
	ch[3] = 255
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: invalid component %q: %w", p, err)
		}
		if i == 3 && v <= 1 {
			v *= 255
		}
		ch[i] = uint8(math32.Clamp(math32.Round(float32(v)), 0, 255))
	}
	return AsRGBA(color.NRGBA{ch[0], ch[1], ch[2], ch[3]}), nil
}

// FromHex parses the given hex color string
// and returns the resulting color. It accepts
// #RGB, #RRGGBB and #RRGGBBAA forms, with or
// without the leading #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	switch len(hex) {
	case 3:
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.RGBA{r | r<<4, g | g<<4, b | b<<4, 255}, nil
	case 6:
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
	case 8:
		return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string,
// omitting the alpha component if the color is opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the second and 90% of the first, etc;
// blending is done directly on non-premultiplied sRGB values.
func Blend(pct float32, x, y color.Color) color.RGBA {
	nx := color.NRGBAModel.Convert(x).(color.NRGBA)
	ny := color.NRGBAModel.Convert(y).(color.NRGBA)
	oth := math32.Clamp(pct, 0, 100) / 100
	me := 1 - oth
	mix := func(a, b uint8) uint8 {
		return uint8(math32.Round(me*float32(a) + oth*float32(b)))
	}
	return AsRGBA(color.NRGBA{mix(nx.R, ny.R), mix(nx.G, ny.G), mix(nx.B, ny.B), mix(nx.A, ny.A)})
}

// Inverse returns the inverse of the given color
// (255 - each component); does not change the alpha channel.
func Inverse(c color.Color) color.RGBA {
	r := AsRGBA(c)
	return color.RGBA{255 - r.R, 255 - r.G, 255 - r.B, r.A}
}
