// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hct implements the HCT (hue, chroma, tone) color space:
// CAM16 hue and chroma combined with CIE L* tone, along with a solver
// that finds the closest in-gamut sRGB color for any HCT triple.
package hct

import (
	"fmt"
	"image/color"

	"github.com/tonalkit/matscheme/colors/cam/cam16"
	"github.com/tonalkit/matscheme/colors/cam/cie"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
type HCT struct {

	// Hue (h) is the spectral identity of the color
	// (red, green, blue etc) in degrees (0-360)
	Hue float32 `min:"0" max:"360"`

	// Chroma (C) is the colorfulness/saturation of the color.
	// Grayscale colors have no chroma, and fully saturated ones
	// have high chroma. The maximum varies as a function of hue
	// and tone, but 150 is a general upper bound.
	Chroma float32 `min:"0" max:"150"`

	// Tone is the L* component from the LAB (L*a*b*) color system,
	// which is linear in human perception of lightness.
	// It ranges from 0 to 100.
	Tone float32 `min:"0" max:"100"`

	// sRGB standard gamma-corrected 0-1 normalized RGB representation
	// of the color. Critically, components are not premultiplied by alpha.
	R, G, B, A float32
}

// New returns a new HCT representation for given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100
// also computes and sets the sRGB normalized, gamma corrected R,G,B values
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func New(hue, chroma, tone float32) HCT {
	r, g, b := SolveToRGB(hue, chroma, tone)
	return SRGBToHCT(r, g, b)
}

// FromColor constructs a new HCT color from a standard [color.Color].
func FromColor(c color.Color) HCT {
	return Uint32ToHCT(c.RGBA())
}

// HueOf returns the CAM16 hue of the given color under standard
// viewing conditions, in degrees (0-360). Alpha is ignored.
func HueOf(c color.Color) float32 {
	return FromColor(c).Hue
}

// ChangeTone returns the color with the same hue and chroma as the
// given color, but with the given tone. Chroma may be reduced to
// keep the result within the sRGB gamut.
func ChangeTone(c color.Color, tone float32) color.RGBA {
	h := FromColor(c)
	return SolveToRGBA(h.Hue, h.Chroma, tone)
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
// Performs the premultiplication of the RGB components by alpha at this point.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return cie.SRGBFloatToUint32(float64(h.R), float64(h.G), float64(h.B), float64(h.A))
}

// AsRGBA returns a standard color.RGBA type
func (h HCT) AsRGBA() color.RGBA {
	r, g, b, a := cie.SRGBFloatToUint8(float64(h.R), float64(h.G), float64(h.B), float64(h.A))
	return color.RGBA{r, g, b, a}
}

// SetUint32 sets components from unsigned 32bit integers (alpha-premultiplied)
func (h *HCT) SetUint32(r, g, b, a uint32) {
	fr, fg, fb, fa := cie.SRGBUint32ToFloat(r, g, b, a)
	*h = SRGBToHCT(float32(fr), float32(fg), float32(fb))
	h.A = float32(fa)
}

// SetColor sets from a standard color.Color
func (h *HCT) SetColor(ci color.Color) {
	if ci == nil {
		*h = HCT{}
		return
	}
	h.SetUint32(ci.RGBA())
}

// SetHue sets the hue of this color. Chroma may decrease because chroma has a
// different maximum for any given hue and tone.
// 0 <= hue < 360; invalid values are corrected.
func (h *HCT) SetHue(hue float32) {
	*h = h.WithHue(hue)
}

// WithHue is like [HCT.SetHue] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithHue(hue float32) HCT {
	return h.with(New(hue, h.Chroma, h.Tone))
}

// SetChroma sets the chroma of this color (0 to max that depends on other params),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetChroma(chroma float32) {
	*h = h.WithChroma(chroma)
}

// WithChroma is like [HCT.SetChroma] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithChroma(chroma float32) HCT {
	return h.with(New(h.Hue, chroma, h.Tone))
}

// SetTone sets the tone of this color (0 < tone < 100),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetTone(tone float32) {
	*h = h.WithTone(tone)
}

// WithTone is like [HCT.SetTone] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithTone(tone float32) HCT {
	return h.with(New(h.Hue, h.Chroma, tone))
}

// with returns nh with the alpha of h.
func (h HCT) with(nh HCT) HCT {
	nh.A = h.A
	return nh
}

// SRGBToHCT returns an HCT from the given SRGB color coordinates,
// under standard viewing conditions. The RGB value range is 0-1,
// and RGB values have gamma correction. Alpha is always 1.
func SRGBToHCT(r, g, b float32) HCT {
	x, y, z := cie.SRGBToXYZ100(float64(r), float64(g), float64(b))
	cam := cam16.FromXYZ(x, y, z)
	return HCT{Hue: float32(cam.Hue), Chroma: float32(cam.Chroma), Tone: float32(cie.YToL(y)), R: r, G: g, B: b, A: 1}
}

// Uint32ToHCT returns an HCT from given SRGBA uint32 color coordinates,
// which are used for interchange among image.Color types.
// Uses standard viewing conditions, and RGB values already have gamma correction
// (i.e., they are SRGB values).
func Uint32ToHCT(r, g, b, a uint32) HCT {
	h := HCT{}
	h.SetUint32(r, g, b, a)
	return h
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
