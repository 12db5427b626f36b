// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE colorimetry needed by the color
// appearance models: sRGB companding, linear sRGB <-> XYZ under
// the D65 white point, and the L*a*b* lightness functions.
//
// All values are float64: the HCT solver resolves colors to the
// exact 8-bit channel values, which float32 cannot guarantee.
package cie

// WhiteD65 is the standard D65 white point in 100-base XYZ coordinates.
var WhiteD65 = [3]float64{95.047, 100.0, 108.883}
