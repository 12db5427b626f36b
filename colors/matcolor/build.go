// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "image/color"

// Build returns the [Scheme] of the given mode for the given key colors.
// It is a pure function of its arguments: equal inputs always give
// bit-identical schemes, and it is safe to call concurrently.
func Build(mode Mode, key *Key) Scheme {
	return NewScheme(mode, NewPalette(key))
}

// Option sets an optional seed color of a [Key].
type Option func(k *Key)

// WithSecondary sets the secondary seed color.
func WithSecondary(c color.RGBA) Option {
	return func(k *Key) { k.Secondary = &c }
}

// WithTertiary sets the tertiary seed color.
func WithTertiary(c color.RGBA) Option {
	return func(k *Key) { k.Tertiary = &c }
}

// WithNeutral sets the neutral seed color.
func WithNeutral(c color.RGBA) Option {
	return func(k *Key) { k.Neutral = &c }
}

// WithNeutralVariant sets the neutral variant seed color.
func WithNeutralVariant(c color.RGBA) Option {
	return func(k *Key) { k.NeutralVariant = &c }
}

// WithError sets the error seed color.
func WithError(c color.RGBA) Option {
	return func(k *Key) { k.Error = &c }
}

// NewKey returns a new [Key] with the given primary color
// and options applied.
func NewKey(primary color.RGBA, opts ...Option) *Key {
	k := KeyFromPrimary(primary)
	for _, o := range opts {
		o(k)
	}
	return k
}

// BuildColorScheme returns the [Scheme] of the given mode for the given
// primary seed color, with the other seed colors set by options.
// Seeds that are not set default as described in [NewPalette].
func BuildColorScheme(mode Mode, primary color.RGBA, opts ...Option) Scheme {
	return Build(mode, NewKey(primary, opts...))
}
