// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonalkit/matscheme/colors/cam/hct"
)

func TestSpaced(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for idx := range 40 {
		c := Spaced(idx, false)
		assert.False(t, seen[c], "index %d repeats an earlier color", idx)
		seen[c] = true
		if idx%8 != 3 {
			assert.Equal(t, c, Spaced(idx, true), idx)
		}
	}
	assert.NotEqual(t, Spaced(3, false), Spaced(3, true))
	assert.Equal(t, Spaced(0, false), Spaced(-4, false))

	for i, hue := range spacedHues {
		h := hct.FromColor(Spaced(i, false))
		assert.InDelta(t, 0, hct.MinHueDistance(hue, h.Hue), 5, i)
	}
}
