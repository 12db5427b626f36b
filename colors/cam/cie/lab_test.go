// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tonalkit/matscheme/base/tolassert"
)

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.887904, LABCompress(0.7))
	tolassert.Equal(t, 0.1379544, LABCompress(0.000003))
	tolassert.Equal(t, 0.216, LABUncompress(0.6))

	l, a, b := XYZToLAB(0.1, 0.3, 0.5)
	tolassert.Equal(t, 61.654222, l)
	tolassert.Equal(t, -98.673797, a)
	tolassert.Equal(t, -20.413663, b)

	x, y, z := LABToXYZ(28, 14, 36.2)
	tolassert.Equal(t, 0.06422657, x)
	tolassert.Equal(t, 0.05457378, y)
	tolassert.Equal(t, 0.0084425956, z)

	tolassert.Equal(t, 2.3023315, LToY(17))
	tolassert.Equal(t, 21.579497, YToL(3.4))
}

func TestLStarRoundTrip(t *testing.T) {
	for l := 0.0; l <= 100; l += 0.5 {
		tolassert.EqualTol(t, l, YToL(LToY(l)), 1e-9)
	}
}

// go-colorful computes L* with its own D65 constants,
// so agreement is only checked to within a small tolerance.
func TestLStarColorful(t *testing.T) {
	for _, hex := range []string{"#000000", "#336699", "#00ff00", "#ff8000", "#e0e0e0", "#ffffff"} {
		c, err := colorful.Hex(hex)
		if err != nil {
			t.Fatal(err)
		}
		l, _, _ := c.Lab()
		_, y, _ := SRGBToXYZ(c.R, c.G, c.B)
		tolassert.EqualTol(t, l*100, YToL(y*100), 0.05, hex)
	}
}
