// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/tonalkit/matscheme/colors/cam/hct"
)

// spacedHues are blue, red, green, yellow, violet, aqua, orange, blueviolet.
var spacedHues = []float32{255, 25, 150, 105, 340, 210, 60, 300}

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCT space.
// This is useful for labeling a list of items, such as the
// themes of a batch build. The dark variant uses slightly
// lighter tones for some hues to stand out on dark surfaces.
func Spaced(idx int, dark bool) color.RGBA {
	toffs := []float32{0, -10, 0, 5, 0, 0, 5, 0}
	if dark {
		toffs[3] = 10
	}
	tones := []float32{65, 80, 45, 65, 80}
	chromas := []float32{90, 90, 90, 20, 20}
	idx = max(idx, 0)
	hi := idx % len(spacedHues)
	tci := (idx / len(spacedHues)) % len(tones)
	return hct.New(spacedHues[hi], chromas[tci], toffs[hi]+tones[tci]).AsRGBA()
}
