// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image"
	"image/color"

	"github.com/tonalkit/matscheme/colors/cam/hct"
)

// Tones is a tonal palette: a fixed hue and chroma from which
// colors at any tone can be obtained with [Tones.AbsTone].
type Tones struct {

	// Key is the seed color the hue (and for the error family,
	// the chroma) was taken from
	Key color.RGBA

	// Hue is the HCT hue of every tone, in degrees
	Hue float32

	// Chroma is the requested HCT chroma of every tone;
	// tones that cannot reach it in sRGB are clamped to the gamut boundary.
	Chroma float32
}

// NewTones returns new [Tones] with the hue of the given seed color
// and the given fixed chroma.
func NewTones(key color.RGBA, chroma float32) Tones {
	return Tones{Key: key, Hue: hct.HueOf(key), Chroma: chroma}
}

// TonesFromColor returns new [Tones] that keep both the hue and
// the chroma of the given seed color, so that every tone is the
// result of changing the tone of the seed.
func TonesFromColor(key color.RGBA) Tones {
	h := hct.FromColor(key)
	return Tones{Key: key, Hue: h.Hue, Chroma: h.Chroma}
}

// AbsTone returns the color at the given absolute
// tone on a scale of 0 to 100.
func (t Tones) AbsTone(tone float32) color.RGBA {
	return hct.SolveToRGBA(t.Hue, t.Chroma, tone)
}

// AbsToneUniform returns [image.Uniform] of [Tones.AbsTone].
func (t Tones) AbsToneUniform(tone float32) *image.Uniform {
	return image.NewUniform(t.AbsTone(tone))
}
