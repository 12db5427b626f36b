// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "image/color"

// DefaultError is the seed color used for the error family
// when a [Key] does not specify one.
var DefaultError = color.RGBA{255, 0, 0, 255}

// Key contains the set of seed colors used to generate a [Palette].
// Only Primary is required; the hue of every other family
// defaults to one derived from it (see [NewPalette]).
type Key struct {

	// Primary is the key color for the primary tonal palette
	Primary color.RGBA

	// Secondary is the key color for the secondary tonal palette;
	// nil means that the hue of Primary is used.
	Secondary *color.RGBA

	// Tertiary is the key color for the tertiary tonal palette;
	// nil means that the hue of Primary rotated by 60 degrees is used.
	Tertiary *color.RGBA

	// Neutral is the key color for the neutral tonal palette;
	// nil means that the hue of Primary is used.
	Neutral *color.RGBA

	// NeutralVariant is the key color for the neutral variant tonal palette;
	// nil means that the hue of Primary is used.
	NeutralVariant *color.RGBA

	// Error is the key color for the error tonal palette;
	// nil means [DefaultError].
	Error *color.RGBA
}

// KeyFromPrimary returns a new [Key] from the given primary color,
// with every other seed left to its default.
func KeyFromPrimary(primary color.RGBA) *Key {
	return &Key{Primary: primary}
}

// ErrorSeed returns the error seed color of the key,
// which is [DefaultError] if none is set.
func (k *Key) ErrorSeed() color.RGBA {
	if k.Error != nil {
		return *k.Error
	}
	return DefaultError
}
