// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.040449936 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value.
// Used in converting from XYZ to sRGB.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGB100ToLinear converts set of sRGB components to linear values,
// removing gamma correction.  returns 100-base RGB values
func SRGB100ToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl, gl, bl = SRGBToLinear(r, g, b)
	rl *= 100
	gl *= 100
	bl *= 100
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFromLinear100 converts set of sRGB components from linear values in 0-100 range,
// adding gamma correction.
func SRGBFromLinear100(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinear(rl/100, gl/100, bl/100)
}

// Delinearize8 converts a 100-base linear sRGB component
// into a gamma corrected 8-bit channel value, rounding
// to the nearest integer and clamping to 0-255.
func Delinearize8(lin100 float64) uint8 {
	d := SRGBFromLinearComp(lin100/100) * 255
	return uint8(math.Round(min(max(d, 0), 255)))
}

// Linearize8 converts a gamma corrected 8-bit channel value
// into a 100-base linear sRGB component.
func Linearize8(c uint8) float64 {
	return SRGBToLinearComp(float64(c)/255) * 100
}

// SRGBFloatToUint8 converts the given non-alpha-premuntiplied sRGB float32
// values to alpha-premultiplied sRGB uint8 values.
func SRGBFloatToUint8(rf, gf, bf, af float64) (r, g, b, a uint8) {
	r = uint8(rf*af*255 + 0.5)
	g = uint8(gf*af*255 + 0.5)
	b = uint8(bf*af*255 + 0.5)
	a = uint8(af*255 + 0.5)
	return
}

// SRGBFloatToUint32 converts the given non-alpha-premuntiplied sRGB float
// values to alpha-premultiplied sRGB uint32 values.
func SRGBFloatToUint32(rf, gf, bf, af float64) (r, g, b, a uint32) {
	r = uint32(rf*af*65535 + 0.5)
	g = uint32(gf*af*65535 + 0.5)
	b = uint32(bf*af*65535 + 0.5)
	a = uint32(af*65535 + 0.5)
	return
}

// SRGBUint32ToFloat converts the given alpha-premultiplied sRGB uint32
// values to non-alpha-premuntiplied sRGB float values.
func SRGBUint32ToFloat(r, g, b, a uint32) (fr, fg, fb, fa float64) {
	fa = float64(a) / 65535
	if fa == 0 {
		return 0, 0, 0, 0
	}
	fr = (float64(r) / 65535) / fa
	fg = (float64(g) / 65535) / fa
	fb = (float64(b) / 65535) / fa
	return
}
