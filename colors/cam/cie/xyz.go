// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2413774792388685*x - 1.5376652402851851*y - 0.49885366846268053*z
	gl = -0.9691452513005321*x + 1.8758853451067872*y + 0.04156585616912061*z
	bl = 0.05562093689691305*x - 0.20395524564742123*y + 1.0571799111220335*z
	return
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// SRGBToXYZ100 converts sRGB into XYZ CIE standard color space
// with 100-base sRGB values -- used for CAM16 but not CIELUV
func SRGBToXYZ100(r, g, b float64) (x, y, z float64) {
	rl, gl, bl := SRGB100ToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	r, g, b = SRGBFromLinear(rl, gl, bl)
	return
}

// XYZ100ToSRGB converts XYZ CIE standard color space, 100 scale, into sRGB
func XYZ100ToSRGB(x, y, z float64) (r, g, b float64) {
	return XYZToSRGB(x/100, y/100, z/100)
}
