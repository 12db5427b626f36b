// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"

	"github.com/tonalkit/matscheme/math32"
)

// The transforms below derive one seed color from another, and back the
// "lighten-N", "darken-N", "highlight-N", "samelight-N", "saturate-N",
// "desaturate-N", "spin-N" and "blend-N-color" forms that a theme may give
// in place of a literal secondary, tertiary or neutral seed, relative to
// the primary. Each one moves a single HCT coordinate and solves back to
// sRGB, so out of range results land on the nearest displayable color.

// adjust returns c with fn applied to its HCT coordinates.
func adjust(c color.Color, fn func(h *HCT)) color.RGBA {
	h := FromColor(c)
	fn(&h)
	return h.AsRGBA()
}

// Lighten raises the tone of c by amount (lighten-N).
func Lighten(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) { h.SetTone(h.Tone + amount) })
}

// Darken lowers the tone of c by amount (darken-N).
func Darken(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) { h.SetTone(h.Tone - amount) })
}

// Highlight moves the tone of c by amount toward the middle of the
// tone range: darker for tones of 50 and above, lighter otherwise
// (highlight-N). It is the opposite of [Samelight].
func Highlight(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) {
		if h.Tone >= 50 {
			amount = -amount
		}
		h.SetTone(h.Tone + amount)
	})
}

// Samelight moves the tone of c by amount away from the middle of the
// tone range: lighter for tones of 50 and above, darker otherwise
// (samelight-N). It is the opposite of [Highlight].
func Samelight(c color.Color, amount float32) color.RGBA {
	return Highlight(c, -amount)
}

// Saturate raises the chroma of c by amount, up to the most the hue
// and tone allow (saturate-N).
func Saturate(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) { h.SetChroma(h.Chroma + amount) })
}

// Desaturate lowers the chroma of c by amount, down to grey (desaturate-N).
func Desaturate(c color.Color, amount float32) color.RGBA {
	return Saturate(c, -amount)
}

// Spin rotates the hue of c by amount degrees (spin-N). A tertiary seed
// of "spin-60" is the primary hue turned 60 degrees, as the default
// tertiary is.
func Spin(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h *HCT) { h.SetHue(h.Hue + amount) })
}

// MinHueDistance returns the signed shortest rotation in degrees
// that takes hue a to hue b.
func MinHueDistance(a, b float32) float32 {
	d := math32.Mod(b-a, 360)
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return d
}

// Blend mixes x and y in HCT (blend-N-color), with pct percent of x:
// 10 gives 10% of x and 90% of y. The hue turns along the shorter arc,
// weighted by chroma, since the hue of a near grey color carries little.
func Blend(pct float32, x, y color.Color) color.RGBA {
	hx := FromColor(x)
	hy := FromColor(y)
	px := math32.Clamp(pct, 0, 100) / 100
	py := 1 - px

	chroma := px*hx.Chroma + py*hy.Chroma
	var wy float32
	if chroma > 0 {
		wy = py * hy.Chroma / chroma
	}
	hue := math32.SanitizeDegrees(hx.Hue + wy*MinHueDistance(hx.Hue, hy.Hue))

	hr := New(hue, chroma, px*hx.Tone+py*hy.Tone)
	hr.A = px*hx.A + py*hy.A
	return hr.AsRGBA()
}
