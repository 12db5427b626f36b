// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "image/color"

// Scheme contains the colors for one Material Design 3 color scheme
// (ie: light or dark). The accent families are flattened into
// individual roles; see [Scheme.Accent] to get them grouped.
type Scheme struct {

	// Primary is the primary color applied to important elements
	Primary color.RGBA

	// OnPrimary is the color applied to content on top of Primary
	OnPrimary color.RGBA

	// PrimaryContainer is the color applied to elements with less emphasis than Primary
	PrimaryContainer color.RGBA

	// OnPrimaryContainer is the color applied to content on top of PrimaryContainer
	OnPrimaryContainer color.RGBA

	// InversePrimary is the color applied to interactive elements on top of InverseSurface
	InversePrimary color.RGBA

	// Secondary is the secondary color applied to less important elements
	Secondary color.RGBA

	// OnSecondary is the color applied to content on top of Secondary
	OnSecondary color.RGBA

	// SecondaryContainer is the color applied to elements with less emphasis than Secondary
	SecondaryContainer color.RGBA

	// OnSecondaryContainer is the color applied to content on top of SecondaryContainer
	OnSecondaryContainer color.RGBA

	// Tertiary is the tertiary color applied as an accent to highlight elements and create contrast between other colors
	Tertiary color.RGBA

	// OnTertiary is the color applied to content on top of Tertiary
	OnTertiary color.RGBA

	// TertiaryContainer is the color applied to elements with less emphasis than Tertiary
	TertiaryContainer color.RGBA

	// OnTertiaryContainer is the color applied to content on top of TertiaryContainer
	OnTertiaryContainer color.RGBA

	// Error is the error color applied to elements that indicate an error or danger
	Error color.RGBA

	// OnError is the color applied to content on top of Error
	OnError color.RGBA

	// ErrorContainer is the color applied to elements with less emphasis than Error
	ErrorContainer color.RGBA

	// OnErrorContainer is the color applied to content on top of ErrorContainer
	OnErrorContainer color.RGBA

	// Background is the color applied to the background of the app and other low-emphasis areas.
	// It is always the same as Surface.
	Background color.RGBA

	// OnBackground is the color applied to content on top of Background.
	// It is always the same as OnSurface.
	OnBackground color.RGBA

	// Surface is the color applied to contained areas, like the background of an app
	Surface color.RGBA

	// OnSurface is the color applied to content on top of Surface elements
	OnSurface color.RGBA

	// SurfaceVariant is the color applied to contained areas that contrast standard Surface elements
	SurfaceVariant color.RGBA

	// OnSurfaceVariant is the color applied to content on top of SurfaceVariant elements
	OnSurfaceVariant color.RGBA

	// SurfaceTint is the color applied to tint surfaces.
	// It is always the same as Primary.
	SurfaceTint color.RGBA

	// InverseSurface is the color applied to elements to make them the reverse color of the surrounding elements and create a contrasting effect
	InverseSurface color.RGBA

	// InverseOnSurface is the color applied to content on top of InverseSurface
	InverseOnSurface color.RGBA

	// Outline is the color applied to borders to create emphasized boundaries that need to have sufficient contrast
	Outline color.RGBA

	// OutlineVariant is the color applied to create decorative boundaries
	OutlineVariant color.RGBA

	// Scrim is the color applied to scrims (semi-transparent overlays)
	Scrim color.RGBA

	// SurfaceBright is the color applied to elements that will always have the brightest surface color (see Surface for more information)
	SurfaceBright color.RGBA

	// SurfaceDim is the color applied to elements that will always have the dimmest surface color (see Surface for more information)
	SurfaceDim color.RGBA

	// SurfaceContainer is the color applied to container elements that contrast elements with the surface color
	SurfaceContainer color.RGBA

	// SurfaceContainerHigh is the color applied to surface container elements that have higher emphasis (see SurfaceContainer for more information)
	SurfaceContainerHigh color.RGBA

	// SurfaceContainerHighest is the color applied to surface container elements that have the highest emphasis (see SurfaceContainer for more information)
	SurfaceContainerHighest color.RGBA

	// SurfaceContainerLow is the color applied to surface container elements that have lower emphasis (see SurfaceContainer for more information)
	SurfaceContainerLow color.RGBA

	// SurfaceContainerLowest is the color applied to surface container elements that have the lowest emphasis (see SurfaceContainer for more information)
	SurfaceContainerLowest color.RGBA
}

// NewLightScheme returns a new light-themed [Scheme]
// based on the given [Palette].
func NewLightScheme(p *Palette) Scheme {
	s := Scheme{
		InversePrimary: p.Primary.AbsTone(80),

		Surface:          p.Neutral.AbsTone(98),
		OnSurface:        p.Neutral.AbsTone(10),
		SurfaceVariant:   p.NeutralVariant.AbsTone(90),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(30),

		InverseSurface:   p.Neutral.AbsTone(20),
		InverseOnSurface: p.Neutral.AbsTone(95),

		Outline:        p.NeutralVariant.AbsTone(50),
		OutlineVariant: p.NeutralVariant.AbsTone(80),
		Scrim:          p.Neutral.AbsTone(0),

		SurfaceBright: p.Neutral.AbsTone(98),
		SurfaceDim:    p.Neutral.AbsTone(87),

		SurfaceContainer:        p.Neutral.AbsTone(94),
		SurfaceContainerHigh:    p.Neutral.AbsTone(92),
		SurfaceContainerHighest: p.Neutral.AbsTone(90),
		SurfaceContainerLow:     p.Neutral.AbsTone(96),
		SurfaceContainerLowest:  p.Neutral.AbsTone(100),
	}
	s.setAccents(p, NewAccentLight)
	return s
}

// NewDarkScheme returns a new dark-themed [Scheme]
// based on the given [Palette].
func NewDarkScheme(p *Palette) Scheme {
	s := Scheme{
		InversePrimary: p.Primary.AbsTone(40),

		Surface:          p.Neutral.AbsTone(6),
		OnSurface:        p.Neutral.AbsTone(90),
		SurfaceVariant:   p.NeutralVariant.AbsTone(30),
		OnSurfaceVariant: p.NeutralVariant.AbsTone(80),

		InverseSurface:   p.Neutral.AbsTone(90),
		InverseOnSurface: p.Neutral.AbsTone(20),

		Outline:        p.NeutralVariant.AbsTone(60),
		OutlineVariant: p.NeutralVariant.AbsTone(30),
		Scrim:          p.Neutral.AbsTone(0),

		SurfaceBright: p.Neutral.AbsTone(24),
		SurfaceDim:    p.Neutral.AbsTone(6),

		SurfaceContainer:        p.Neutral.AbsTone(12),
		SurfaceContainerHigh:    p.Neutral.AbsTone(17),
		SurfaceContainerHighest: p.Neutral.AbsTone(22),
		SurfaceContainerLow:     p.Neutral.AbsTone(10),
		SurfaceContainerLowest:  p.Neutral.AbsTone(4),
	}
	s.setAccents(p, NewAccentDark)
	return s
}

// NewScheme returns a new [Scheme] of the given mode
// based on the given [Palette].
func NewScheme(mode Mode, p *Palette) Scheme {
	if mode == Dark {
		return NewDarkScheme(p)
	}
	return NewLightScheme(p)
}

// setAccents sets the accent roles of the four accent families
// using the given accent constructor, and then the alias roles.
func (s *Scheme) setAccents(p *Palette, accent func(Tones) Accent) {
	s.setAccent(FamilyPrimary, accent(p.Primary))
	s.setAccent(FamilySecondary, accent(p.Secondary))
	s.setAccent(FamilyTertiary, accent(p.Tertiary))
	s.setAccent(FamilyError, accent(p.Error))

	s.Background = s.Surface
	s.OnBackground = s.OnSurface
	s.SurfaceTint = s.Primary
}

// accentFields returns pointers to the four accent roles of the
// given family, in Base, On, Container, OnContainer order,
// or nil for the neutral families.
func (s *Scheme) accentFields(f Family) []*color.RGBA {
	switch f {
	case FamilyPrimary:
		return []*color.RGBA{&s.Primary, &s.OnPrimary, &s.PrimaryContainer, &s.OnPrimaryContainer}
	case FamilySecondary:
		return []*color.RGBA{&s.Secondary, &s.OnSecondary, &s.SecondaryContainer, &s.OnSecondaryContainer}
	case FamilyTertiary:
		return []*color.RGBA{&s.Tertiary, &s.OnTertiary, &s.TertiaryContainer, &s.OnTertiaryContainer}
	case FamilyError:
		return []*color.RGBA{&s.Error, &s.OnError, &s.ErrorContainer, &s.OnErrorContainer}
	}
	return nil
}

func (s *Scheme) setAccent(f Family, a Accent) {
	fs := s.accentFields(f)
	if fs == nil {
		return
	}
	*fs[0], *fs[1], *fs[2], *fs[3] = a.Base, a.On, a.Container, a.OnContainer
}

// Accent returns the four accent roles of the given family as an [Accent].
// It returns false for the neutral families, which have no accents.
func (s *Scheme) Accent(f Family) (Accent, bool) {
	fs := s.accentFields(f)
	if fs == nil {
		return Accent{}, false
	}
	return Accent{Base: *fs[0], On: *fs[1], Container: *fs[2], OnContainer: *fs[3]}, true
}
