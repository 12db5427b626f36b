// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// labEpsilon is the CIE L* linear segment threshold (216/24389)
	labEpsilon = 216.0 / 24389.0

	// labKappa is the CIE L* linear segment slope (24389/27)
	labKappa = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress]
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts a color from XYZ to L*a*b* coordinates
// using the D65 white point. XYZ values are on a 0-1 scale.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x * 100 / WhiteD65[0])
	fy := LABCompress(y * 100 / WhiteD65[1])
	fz := LABCompress(z * 100 / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color from L*a*b* to XYZ coordinates
// using the D65 white point. XYZ values are on a 0-1 scale.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0] / 100
	y = LABUncompress(fy) * WhiteD65[1] / 100
	z = LABUncompress(fz) * WhiteD65[2] / 100
	return
}

// LToY converts an L* lightness value (0-100) into
// a 100-base relative luminance Y value.
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a 100-base relative luminance Y value
// into an L* lightness value (0-100).
func YToL(y float64) float64 {
	return LABCompress(y/100)*116 - 16
}
