// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Family is one of the hue and chroma groupings of a [Palette]
// from which the tonal roles of a [Scheme] are derived.
type Family int32 //enums:enum -trim-prefix Family -transform kebab

const (
	// FamilyPrimary is used for the most prominent elements.
	FamilyPrimary Family = iota

	// FamilySecondary is used for less prominent elements.
	FamilySecondary

	// FamilyTertiary is used for contrasting accents.
	FamilyTertiary

	// FamilyNeutral is used for surfaces and backgrounds.
	FamilyNeutral

	// FamilyNeutralVariant is used for medium emphasis surfaces and outlines.
	FamilyNeutralVariant

	// FamilyError is used for elements that indicate an error.
	FamilyError
)

// Chroma returns the fixed chroma used for the family,
// and false for [FamilyError], which keeps the chroma of its seed.
func (f Family) Chroma() (float32, bool) {
	switch f {
	case FamilyPrimary:
		return 36, true
	case FamilySecondary:
		return 16, true
	case FamilyTertiary:
		return 24, true
	case FamilyNeutral:
		return 4, true
	case FamilyNeutralVariant:
		return 8, true
	}
	return 0, false
}
