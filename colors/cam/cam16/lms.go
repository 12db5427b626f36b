// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cam16

import "math"

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAT16 transform from CIECAM16 color appearance model
// (LiLiWangEtAl17)
func XYZToLMS(x, y, z float64) (l, m, s float64) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LMSToXYZ is the inverse of [XYZToLMS].
func LMSToXYZ(l, m, s float64) (x, y, z float64) {
	x = 1.86206786*l - 1.01125463*m + 0.14918677*s
	y = 0.38752654*l + 0.62144744*m - 0.00897398*s
	z = -0.01584150*l - 0.03412294*m + 1.04996444*s
	return
}

// LuminanceAdaptComp performs luminance adaptation
// based on CAM16 viewing conditions, on one component
// that has already been scaled by the discount factor.
func LuminanceAdaptComp(v, fl float64) float64 {
	af := math.Pow(fl*math.Abs(v)/100, 0.42)
	return sign(v) * 400 * af / (af + 27.13)
}

// LuminanceAdapt performs luminance adaptation
// based on CAM16 viewing conditions
func LuminanceAdapt(l, m, s float64, vw *View) (lA, mA, sA float64) {
	lA = LuminanceAdaptComp(l*vw.RGBD[0], vw.FL)
	mA = LuminanceAdaptComp(m*vw.RGBD[1], vw.FL)
	sA = LuminanceAdaptComp(s*vw.RGBD[2], vw.FL)
	return
}

// InverseLuminanceAdaptComp is the inverse of [LuminanceAdaptComp]
// for fl = 1, returning the discounted, unadapted component.
func InverseLuminanceAdaptComp(adapted float64) float64 {
	abs := math.Abs(adapted)
	base := max(0, 27.13*abs/(400-abs))
	return sign(adapted) * math.Pow(base, 1/0.42)
}

// LMSToOps converts adapted LMS to opponent-values:
// a = red-green, b = yellow-blue, and the achromatic
// response (grey) and its normalized form used for chroma.
func LMSToOps(l, m, s float64, vw *View) (redVgreen, yellowVblue, grey, greyNorm float64) {
	lA, mA, sA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*lA - 12*mA + sA) / 11
	yellowVblue = (lA + mA - 2*sA) / 9
	// auxiliary components
	greyNorm = (20*lA + 20*mA + 21*sA) / 20
	grey = (40*lA + 20*mA + sA) / 20
	return
}

// sign returns -1, 0, or 1 according to the sign of x.
func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
