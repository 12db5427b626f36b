// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

//go:generate core generate

// Mode is the presentation mode of a color scheme.
type Mode int32 //enums:enum -transform lower

const (
	// Dark is a dark-themed scheme: light content on dark surfaces.
	Dark Mode = iota

	// Light is a light-themed scheme: dark content on light surfaces.
	Light
)
