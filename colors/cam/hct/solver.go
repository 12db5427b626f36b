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

package hct

import (
	"image/color"
	"math"

	"github.com/tonalkit/matscheme/colors/cam/cam16"
	"github.com/tonalkit/matscheme/colors/cam/cie"
)

// vec3 is a linear RGB (0-100) or cone response triple.
type vec3 [3]float64

// SolveToRGB finds the sRGB color with the given hue, chroma, and tone,
// returning gamma corrected 0-1 normalized components. If the
// chroma is out of gamut for the hue and tone, the result is the
// color on the gamut boundary closest in hue at that tone.
func SolveToRGB(hue, chroma, tone float32) (r, g, b float32) {
	c := SolveToRGBA(hue, chroma, tone)
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// SolveToRGBA is like [SolveToRGB] but returns an opaque [color.RGBA].
// It always terminates and never fails: Newton iteration on CAM16
// lightness is tried first, falling back on a bounded bisection
// of the constant-luminance plane within the RGB cube.
func SolveToRGBA(hue, chroma, tone float32) color.RGBA {
	h := float64(hue)
	c := float64(chroma)
	l := float64(tone)
	if c < 0.0001 || l < 0.0001 || l > 99.9999 {
		return greyFromTone(l)
	}
	hueRad := cam16.SanitizeDegrees(h) * math.Pi / 180
	y := cie.LToY(l)
	if lin, ok := findResultByJ(hueRad, c, y); ok {
		return rgbaFromLinear(lin)
	}
	return rgbaFromLinear(bisectToLimit(y, hueRad))
}

// greyFromTone returns the achromatic color with the given tone.
func greyFromTone(tone float64) color.RGBA {
	v := cie.Delinearize8(cie.LToY(tone))
	return color.RGBA{v, v, v, 255}
}

func rgbaFromLinear(lin vec3) color.RGBA {
	return color.RGBA{cie.Delinearize8(lin[0]), cie.Delinearize8(lin[1]), cie.Delinearize8(lin[2]), 255}
}

// findResultByJ finds a color with the given hue, chroma, and Y
// by Newton iteration on CAM16 lightness (J). It returns false
// if the solution is outside of the sRGB gamut.
func findResultByJ(hueRad, chroma, y float64) (vec3, bool) {
	vw := cam16.StdView()

	// Initial estimate of j.
	j := math.Sqrt(y) * 11
	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)
	eHue := 0.25 * (math.Cos(hueRad+2) + 3.8)
	p1 := eHue * (50000.0 / 13.0) * vw.NC * vw.NCB
	hSin := math.Sin(hueRad)
	hCos := math.Cos(hueRad)
	for round := range 5 {
		jNorm := j / 100
		alpha := 0.0
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNorm)
		}
		t := math.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := vw.AW * math.Pow(jNorm, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403
		scaled := vec3{
			cam16.InverseLuminanceAdaptComp(rA),
			cam16.InverseLuminanceAdaptComp(gA),
			cam16.InverseLuminanceAdaptComp(bA),
		}
		lin := scaled.mul(&linrgbFromScaledDiscount)
		if lin[0] < 0 || lin[1] < 0 || lin[2] < 0 {
			return lin, false
		}
		fnj := yFromLinrgb[0]*lin[0] + yFromLinrgb[1]*lin[1] + yFromLinrgb[2]*lin[2]
		if fnj <= 0 {
			return lin, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if lin[0] > 100.01 || lin[1] > 100.01 || lin[2] > 100.01 {
				return lin, false
			}
			return lin, true
		}
		// Iterates with Newton method,
		// using 2 * fn(j) / j as the approximation of fn'(j)
		j -= (fnj - y) * j / (2 * fnj)
	}
	return vec3{}, false
}

// hueOfLinear returns the CAM16 hue of a linear RGB color, in radians.
func hueOfLinear(lin vec3) float64 {
	sd := lin.mul(&scaledDiscountFromLinrgb)
	rA := chromaticAdaptation(sd[0])
	gA := chromaticAdaptation(sd[1])
	bA := chromaticAdaptation(sd[2])
	// redness-greenness
	a := (11*rA - 12*gA + bA) / 11
	// yellowness-blueness
	b := (rA + gA - 2*bA) / 9
	return math.Atan2(b, a)
}

func chromaticAdaptation(c float64) float64 {
	af := math.Pow(math.Abs(c), 0.42)
	if c < 0 {
		return -400 * af / (af + 27.13)
	}
	return 400 * af / (af + 27.13)
}

func (v vec3) mul(m *[3][3]float64) vec3 {
	return vec3{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

func isBounded(x float64) bool {
	return 0 <= x && x <= 100
}

// nthVertex returns the nth possible vertex (0 <= n <= 11) of the
// polygonal intersection of the y plane and the RGB cube, in linear
// RGB coordinates. It returns false if the vertex lies outside the cube.
func nthVertex(y float64, n int) (vec3, bool) {
	kR, kG, kB := yFromLinrgb[0], yFromLinrgb[1], yFromLinrgb[2]
	coordA := 0.0
	if n%4 > 1 {
		coordA = 100
	}
	coordB := 0.0
	if n%2 != 0 {
		coordB = 100
	}
	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		return vec3{r, g, b}, isBounded(r)
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		return vec3{r, g, b}, isBounded(g)
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		return vec3{r, g, b}, isBounded(b)
	}
}

// bisectToSegment finds the edge of the y plane polygon
// containing the target hue, returning its two endpoints.
func bisectToSegment(y, targetHue float64) (left, right vec3) {
	leftHue, rightHue := 0.0, 0.0
	initialized := false
	uncut := true
	for n := range 12 {
		mid, ok := nthVertex(y, n)
		if !ok {
			continue
		}
		midHue := hueOfLinear(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || cam16.InCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if cam16.InCyclicOrder(leftHue, targetHue, midHue) {
				right, rightHue = mid, midHue
			} else {
				left, leftHue = mid, midHue
			}
		}
	}
	return
}

func criticalPlaneBelow(x float64) int { return int(math.Floor(x - 0.5)) }

func criticalPlaneAbove(x float64) int { return int(math.Ceil(x - 0.5)) }

// trueDelinearized converts a linear 0-100 component to a
// gamma corrected 0-255 value without rounding.
func trueDelinearized(comp float64) float64 {
	return cie.SRGBFromLinearComp(comp/100) * 255
}

// bisectToLimit finds a color with the given Y and hue
// on the boundary of the RGB cube, in linear RGB coordinates.
func bisectToLimit(y, targetHue float64) vec3 {
	left, right := bisectToSegment(y, targetHue)
	leftHue := hueOfLinear(left)
	for axis := range 3 {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = criticalPlaneBelow(trueDelinearized(left[axis]))
			rPlane = criticalPlaneAbove(trueDelinearized(right[axis]))
		} else {
			lPlane = criticalPlaneAbove(trueDelinearized(left[axis]))
			rPlane = criticalPlaneBelow(trueDelinearized(right[axis]))
		}
		for range 8 {
			if abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := (lPlane + rPlane) / 2
			mid := setCoordinate(left, right, criticalPlanes[mPlane], axis)
			midHue := hueOfLinear(mid)
			if cam16.InCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left = mid
				leftHue = midHue
				lPlane = mPlane
			}
		}
	}
	return vec3{(left[0] + right[0]) / 2, (left[1] + right[1]) / 2, (left[2] + right[2]) / 2}
}

// setCoordinate intersects the segment from source to target
// with the plane where the given axis equals coord.
func setCoordinate(source, target vec3, coord float64, axis int) vec3 {
	t := (coord - source[axis]) / (target[axis] - source[axis])
	return vec3{
		source[0] + (target[0]-source[0])*t,
		source[1] + (target[1]-source[1])*t,
		source[2] + (target[2]-source[2])*t,
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

var scaledDiscountFromLinrgb = [3][3]float64{
	{0.001200833568784504, 0.002389694492170889, 0.0002795742885861124},
	{0.0005891086651375999, 0.0029785502573438758, 0.0003270666104008398},
	{0.00010146692491640572, 0.0005364214359186694, 0.0032979401770712076},
}

var linrgbFromScaledDiscount = [3][3]float64{
	{1373.2198709594231, -1100.4251190754821, -7.278681089101213},
	{-271.815969077903, 559.6580465940733, -32.46047482791194},
	{1.9622899599665666, -57.173814538844006, 308.7233197812385},
}

var yFromLinrgb = [3]float64{0.2126, 0.7152, 0.0722}

// criticalPlanes are the linear 0-100 values halfway between
// adjacent 8-bit sRGB channel values.
var criticalPlanes = func() [255]float64 {
	var cp [255]float64
	for i := range cp {
		cp[i] = 100 * cie.SRGBToLinearComp((float64(i)+0.5)/255)
	}
	return cp
}()
