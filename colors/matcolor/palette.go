// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"

	"github.com/tonalkit/matscheme/colors/cam/hct"
	"github.com/tonalkit/matscheme/math32"
)

// TertiaryHueOffset is the rotation in degrees from the primary hue
// used for the tertiary family when no tertiary seed is given.
const TertiaryHueOffset = 60

// Palette contains a tonal palette for each of the color families
// of a Material Design 3 color scheme.
type Palette struct {

	// Primary is the tonal palette for the primary family
	Primary Tones

	// Secondary is the tonal palette for the secondary family
	Secondary Tones

	// Tertiary is the tonal palette for the tertiary family
	Tertiary Tones

	// Neutral is the tonal palette for the neutral family
	Neutral Tones

	// NeutralVariant is the tonal palette for the neutral variant family
	NeutralVariant Tones

	// Error is the tonal palette for the error family
	Error Tones
}

// NewPalette returns a new [Palette] from the given key colors.
// Only the hue is taken from each seed; the chroma of each family is
// fixed (see [Family.Chroma]). The error family keeps both the hue and
// the chroma of its seed.
func NewPalette(k *Key) *Palette {
	ph := hct.HueOf(k.Primary)
	p := &Palette{
		Primary: tonesWithHue(FamilyPrimary, k.Primary, ph),
		Error:   TonesFromColor(k.ErrorSeed()),
	}
	p.Secondary = seedTones(FamilySecondary, k.Secondary, p.Primary)
	p.Neutral = seedTones(FamilyNeutral, k.Neutral, p.Primary)
	p.NeutralVariant = seedTones(FamilyNeutralVariant, k.NeutralVariant, p.Primary)
	if k.Tertiary != nil {
		p.Tertiary = seedTones(FamilyTertiary, k.Tertiary, p.Primary)
	} else {
		p.Tertiary = tonesWithHue(FamilyTertiary, k.Primary, math32.SanitizeDegrees(ph+TertiaryHueOffset))
	}
	return p
}

// seedTones returns the tones of the given family for the given seed,
// falling back on the hue of the primary tones if there is no seed.
func seedTones(f Family, seed *color.RGBA, primary Tones) Tones {
	if seed == nil {
		return tonesWithHue(f, primary.Key, primary.Hue)
	}
	return tonesWithHue(f, *seed, hct.HueOf(*seed))
}

func tonesWithHue(f Family, key color.RGBA, hue float32) Tones {
	chroma, _ := f.Chroma()
	return Tones{Key: key, Hue: hue, Chroma: chroma}
}

// Family returns the tonal palette of the given family.
func (p *Palette) Family(f Family) Tones {
	switch f {
	case FamilySecondary:
		return p.Secondary
	case FamilyTertiary:
		return p.Tertiary
	case FamilyNeutral:
		return p.Neutral
	case FamilyNeutralVariant:
		return p.NeutralVariant
	case FamilyError:
		return p.Error
	}
	return p.Primary
}
