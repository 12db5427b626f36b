// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Schemes contains the light and dark color schemes
// generated from one [Palette].
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

// NewSchemes returns new [Schemes] for the given
// [Palette] containing both light and dark schemes.
func NewSchemes(p *Palette) *Schemes {
	return &Schemes{
		Light: NewLightScheme(p),
		Dark:  NewDarkScheme(p),
	}
}

// Get returns the scheme of the given mode.
func (s *Schemes) Get(mode Mode) *Scheme {
	if mode == Dark {
		return &s.Dark
	}
	return &s.Light
}
