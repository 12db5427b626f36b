// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonalkit/matscheme/base/tolassert"
	"github.com/tonalkit/matscheme/colors/cam/hct"
	"github.com/tonalkit/matscheme/math32"
)

func TestNewPalette(t *testing.T) {
	p := NewPalette(KeyFromPrimary(green))
	ph := hct.HueOf(green)
	tolassert.EqualTol(t, 142.14, ph, 0.01)

	for _, f := range FamilyValues() {
		tn := p.Family(f)
		if f == FamilyError {
			continue
		}
		c, ok := f.Chroma()
		assert.True(t, ok)
		assert.Equal(t, c, tn.Chroma, f.String())
		if f == FamilyTertiary {
			assert.Equal(t, math32.SanitizeDegrees(ph+60), tn.Hue)
		} else {
			assert.Equal(t, ph, tn.Hue, f.String())
		}
	}

	red := hct.FromColor(DefaultError)
	assert.Equal(t, DefaultError, p.Error.Key)
	assert.Equal(t, red.Hue, p.Error.Hue)
	assert.Equal(t, red.Chroma, p.Error.Chroma)
	_, ok := FamilyError.Chroma()
	assert.False(t, ok)
}

func TestPaletteSeeds(t *testing.T) {
	sec := color.RGBA{123, 135, 122, 255}
	ter := color.RGBA{106, 196, 178, 255}
	neu := color.RGBA{133, 131, 121, 255}
	nv := color.RGBA{107, 106, 101, 255}
	er := color.RGBA{219, 46, 37, 255}
	k := NewKey(color.RGBA{52, 61, 235, 255}, WithSecondary(sec), WithTertiary(ter),
		WithNeutral(neu), WithNeutralVariant(nv), WithError(er))
	p := NewPalette(k)

	assert.Equal(t, hct.HueOf(sec), p.Secondary.Hue)
	assert.Equal(t, hct.HueOf(ter), p.Tertiary.Hue)
	assert.Equal(t, hct.HueOf(neu), p.Neutral.Hue)
	assert.Equal(t, hct.HueOf(nv), p.NeutralVariant.Hue)
	assert.Equal(t, TonesFromColor(er), p.Error)

	// chroma stays fixed whatever the seed
	assert.Equal(t, float32(16), p.Secondary.Chroma)
	assert.Equal(t, float32(24), p.Tertiary.Chroma)
	assert.Equal(t, float32(4), p.Neutral.Chroma)
	assert.Equal(t, float32(8), p.NeutralVariant.Chroma)
}

func TestTertiaryWrap(t *testing.T) {
	// a primary hue above 300 wraps around
	magenta := color.RGBA{255, 0, 255, 255}
	ph := hct.HueOf(magenta)
	assert.Greater(t, ph, float32(300))
	p := NewPalette(KeyFromPrimary(magenta))
	tolassert.EqualTol(t, ph+60-360, p.Tertiary.Hue, 1e-3)
}

func TestTones(t *testing.T) {
	tn := NewTones(green, 36)
	assert.Equal(t, hct.HueOf(green), tn.Hue)
	assert.Equal(t, hct.SolveToRGBA(tn.Hue, 36, 50), tn.AbsTone(50))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, tn.AbsTone(0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, tn.AbsTone(100))
	assert.Equal(t, tn.AbsTone(40), tn.AbsToneUniform(40).C)

	// error tones are the same as changing the tone of the seed
	et := TonesFromColor(DefaultError)
	for _, tone := range []float32{10, 20, 30, 40, 80, 90, 100} {
		assert.Equal(t, hct.ChangeTone(DefaultError, tone), et.AbsTone(tone))
	}
	assert.Equal(t, color.RGBA{255, 180, 168, 255}, et.AbsTone(80))
	assert.Equal(t, color.RGBA{192, 1, 0, 255}, et.AbsTone(40))
}

func TestKey(t *testing.T) {
	k := KeyFromPrimary(green)
	assert.Equal(t, green, k.Primary)
	assert.Nil(t, k.Secondary)
	assert.Equal(t, DefaultError, k.ErrorSeed())

	er := color.RGBA{1, 2, 3, 255}
	k = NewKey(green, WithError(er))
	assert.Equal(t, er, k.ErrorSeed())
}
