// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"

	"github.com/tonalkit/matscheme/colors"
	"github.com/tonalkit/matscheme/colors/cam/hct"
)

// Role is a named color slot in a [Scheme].
// Its string form is the kebab case role name,
// such as "on-primary-container".
type Role int32 //enums:enum -trim-prefix Role -transform kebab

const (
	RolePrimary Role = iota
	RoleOnPrimary
	RolePrimaryContainer
	RoleOnPrimaryContainer
	RoleInversePrimary

	RoleSecondary
	RoleOnSecondary
	RoleSecondaryContainer
	RoleOnSecondaryContainer

	RoleTertiary
	RoleOnTertiary
	RoleTertiaryContainer
	RoleOnTertiaryContainer

	RoleError
	RoleOnError
	RoleErrorContainer
	RoleOnErrorContainer

	RoleBackground
	RoleOnBackground
	RoleSurface
	RoleOnSurface
	RoleSurfaceVariant
	RoleOnSurfaceVariant
	RoleSurfaceTint
	RoleInverseSurface
	RoleInverseOnSurface
	RoleOutline
	RoleOutlineVariant
	RoleScrim

	RoleSurfaceBright
	RoleSurfaceDim
	RoleSurfaceContainer
	RoleSurfaceContainerHigh
	RoleSurfaceContainerHighest
	RoleSurfaceContainerLow
	RoleSurfaceContainerLowest
)

// IsAlias returns whether the role is a copy of another role
// rather than an independently computed color: background
// mirrors surface, on-background mirrors on-surface, and
// surface-tint mirrors primary.
func (r Role) IsAlias() bool {
	return r == RoleBackground || r == RoleOnBackground || r == RoleSurfaceTint
}

// Base returns the role that content colored with r is drawn on,
// such as primary for on-primary, and false if r is not a content role.
func (r Role) Base() (Role, bool) {
	switch r {
	case RoleOnPrimary:
		return RolePrimary, true
	case RoleOnPrimaryContainer:
		return RolePrimaryContainer, true
	case RoleOnSecondary:
		return RoleSecondary, true
	case RoleOnSecondaryContainer:
		return RoleSecondaryContainer, true
	case RoleOnTertiary:
		return RoleTertiary, true
	case RoleOnTertiaryContainer:
		return RoleTertiaryContainer, true
	case RoleOnError:
		return RoleError, true
	case RoleOnErrorContainer:
		return RoleErrorContainer, true
	case RoleOnBackground:
		return RoleBackground, true
	case RoleOnSurface:
		return RoleSurface, true
	case RoleOnSurfaceVariant:
		return RoleSurfaceVariant, true
	case RoleInverseOnSurface:
		return RoleInverseSurface, true
	}
	return r, false
}

// RoleColor is a role together with its color in a [Scheme].
type RoleColor struct {
	Role  Role
	Color color.RGBA
}

// field returns a pointer to the scheme field for the given role,
// or nil if the role is not valid.
func (s *Scheme) field(r Role) *color.RGBA {
	switch r {
	case RolePrimary:
		return &s.Primary
	case RoleOnPrimary:
		return &s.OnPrimary
	case RolePrimaryContainer:
		return &s.PrimaryContainer
	case RoleOnPrimaryContainer:
		return &s.OnPrimaryContainer
	case RoleInversePrimary:
		return &s.InversePrimary
	case RoleSecondary:
		return &s.Secondary
	case RoleOnSecondary:
		return &s.OnSecondary
	case RoleSecondaryContainer:
		return &s.SecondaryContainer
	case RoleOnSecondaryContainer:
		return &s.OnSecondaryContainer
	case RoleTertiary:
		return &s.Tertiary
	case RoleOnTertiary:
		return &s.OnTertiary
	case RoleTertiaryContainer:
		return &s.TertiaryContainer
	case RoleOnTertiaryContainer:
		return &s.OnTertiaryContainer
	case RoleError:
		return &s.Error
	case RoleOnError:
		return &s.OnError
	case RoleErrorContainer:
		return &s.ErrorContainer
	case RoleOnErrorContainer:
		return &s.OnErrorContainer
	case RoleBackground:
		return &s.Background
	case RoleOnBackground:
		return &s.OnBackground
	case RoleSurface:
		return &s.Surface
	case RoleOnSurface:
		return &s.OnSurface
	case RoleSurfaceVariant:
		return &s.SurfaceVariant
	case RoleOnSurfaceVariant:
		return &s.OnSurfaceVariant
	case RoleSurfaceTint:
		return &s.SurfaceTint
	case RoleInverseSurface:
		return &s.InverseSurface
	case RoleInverseOnSurface:
		return &s.InverseOnSurface
	case RoleOutline:
		return &s.Outline
	case RoleOutlineVariant:
		return &s.OutlineVariant
	case RoleScrim:
		return &s.Scrim
	case RoleSurfaceBright:
		return &s.SurfaceBright
	case RoleSurfaceDim:
		return &s.SurfaceDim
	case RoleSurfaceContainer:
		return &s.SurfaceContainer
	case RoleSurfaceContainerHigh:
		return &s.SurfaceContainerHigh
	case RoleSurfaceContainerHighest:
		return &s.SurfaceContainerHighest
	case RoleSurfaceContainerLow:
		return &s.SurfaceContainerLow
	case RoleSurfaceContainerLowest:
		return &s.SurfaceContainerLowest
	}
	return nil
}

// Color returns the color of the given role,
// or the zero color if the role is not valid.
func (s *Scheme) Color(r Role) color.RGBA {
	if f := s.field(r); f != nil {
		return *f
	}
	return color.RGBA{}
}

// Roles returns every role of the scheme with its color,
// in the order of the [Role] values.
func (s *Scheme) Roles() []RoleColor {
	roles := RoleValues()
	rc := make([]RoleColor, len(roles))
	for i, r := range roles {
		rc[i] = RoleColor{Role: r, Color: s.Color(r)}
	}
	return rc
}

// Contrast returns the contrast ratio, from 1 to 21, between the content
// role r and the role it is drawn on (see [Role.Base]), and false if r
// is not a content role.
func (s *Scheme) Contrast(r Role) (float32, bool) {
	b, ok := r.Base()
	if !ok {
		return 0, false
	}
	return hct.ContrastRatio(s.Color(b), s.Color(r)), true
}

// Map returns the scheme as a map from role name to hex color string,
// suitable for encoding as JSON, YAML, or TOML.
func (s *Scheme) Map() map[string]string {
	m := make(map[string]string, len(_RoleValues))
	for _, rc := range s.Roles() {
		m[rc.Role.String()] = colors.AsHex(rc.Color)
	}
	return m
}
