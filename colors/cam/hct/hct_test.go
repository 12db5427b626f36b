// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonalkit/matscheme/base/tolassert"
	"github.com/tonalkit/matscheme/colors/cam/cie"
)

func TestHCT(t *testing.T) {
	h := SRGBToHCT(1, 1, 1)
	tolassert.EqualTol(t, 209.492, h.Hue, 0.001)
	tolassert.EqualTol(t, 2.869, h.Chroma, 0.001)
	tolassert.EqualTol(t, 100, h.Tone, 0.001)

	r, g, b := SolveToRGB(120, 60, 50)
	h = SRGBToHCT(r, g, b)
	tolassert.EqualTol(t, 120.133, h.Hue, 0.001)
	tolassert.EqualTol(t, 52.841, h.Chroma, 0.001) // can't do 60
	tolassert.EqualTol(t, 50.013, h.Tone, 0.001)
	assert.Equal(t, color.RGBA{109, 127, 0, 255}, SolveToRGBA(120, 60, 50))
}

func TestGrey(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, SolveToRGBA(100, 50, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, SolveToRGBA(100, 50, 100))
	assert.Equal(t, color.RGBA{119, 119, 119, 255}, SolveToRGBA(300, 0, 50))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, SolveToRGBA(12, 40, -5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, SolveToRGBA(12, 40, 120))
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := color.RGBA{uint8(r), uint8(g), uint8(b), 255}
				h := FromColor(c)
				assert.Equal(t, c, h.AsRGBA())
				assert.Equal(t, c, New(h.Hue, h.Chroma, h.Tone).AsRGBA(), h.String())
			}
		}
	}
}

func TestToneMonotonic(t *testing.T) {
	for hue := float32(0); hue < 360; hue += 30 {
		for _, chroma := range []float32{0, 16, 36, 48, 80, 120} {
			prev := -1.0
			for tone := float32(0); tone <= 100; tone++ {
				c := SolveToRGBA(hue, chroma, tone)
				_, y, _ := cie.SRGBToXYZ100(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
				assert.GreaterOrEqual(t, y, prev-1e-9, "hue %g chroma %g tone %g", hue, chroma, tone)
				prev = y
			}
		}
	}
}

func TestHCTAll(t *testing.T) {
	hues := []float32{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float32{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tones := []float32{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				hs := h.String()
				if chroma > 0 && h.Chroma > 2.5 {
					tolassert.EqualTol(t, 0, MinHueDistance(hue, h.Hue), 4, hs)
				}
				assert.LessOrEqual(t, h.Chroma, chroma+2.5, hs)
				tolassert.EqualTol(t, tone, h.Tone, 0.5, hs)
			}
		}
	}
}

func TestSetters(t *testing.T) {
	h := FromColor(color.RGBA{30, 85, 116, 255})
	w := h.WithTone(80)
	tolassert.EqualTol(t, 80, w.Tone, 0.5)
	assert.Equal(t, h.A, w.A)

	h.SetTone(80)
	assert.Equal(t, w, h)

	h.SetHue(h.Hue + 180)
	tolassert.EqualTol(t, 80, h.Tone, 0.5)

	h.SetChroma(0)
	assert.Equal(t, h.AsRGBA().R, h.AsRGBA().G)
	assert.Equal(t, h.AsRGBA().G, h.AsRGBA().B)

	var nh HCT
	nh.SetColor(nil)
	assert.Equal(t, HCT{}, nh)
}

func TestModel(t *testing.T) {
	c := color.RGBA{18, 127, 205, 255}
	h := Model.Convert(c).(HCT)
	assert.Equal(t, c, h.AsRGBA())
	assert.Equal(t, h, Model.Convert(h))

	r, g, b, a := h.RGBA()
	er, eg, eb, ea := c.RGBA()
	assert.Equal(t, []uint32{er, eg, eb, ea}, []uint32{r, g, b, a})
}

func TestHueOf(t *testing.T) {
	tolassert.EqualTol(t, 142.140, HueOf(color.RGBA{0, 255, 0, 255}), 0.001)
	tolassert.EqualTol(t, 27.408, HueOf(color.RGBA{255, 0, 0, 255}), 0.001)
	// alpha is ignored
	tolassert.EqualTol(t, HueOf(color.RGBA{255, 0, 0, 255}), HueOf(color.NRGBA{255, 0, 0, 128}), 0.01)
}

func TestChangeTone(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	assert.Equal(t, color.RGBA{255, 180, 168, 255}, ChangeTone(red, 80))
	assert.Equal(t, color.RGBA{192, 1, 0, 255}, ChangeTone(red, 40))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ChangeTone(red, 100))
}

func BenchmarkHCT(b *testing.B) {
	for range b.N {
		New(120, 45, 56)
	}
}
