// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "math"

// SanitizeDegrees ensures that the given degree value is in the
// range [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeRadians ensures that the given radian value is in the
// range [0, 2pi).
func SanitizeRadians(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// InCyclicOrder returns true if a, b, c are in cyclic order
// on a circle, in radians.
func InCyclicOrder(a, b, c float64) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}
