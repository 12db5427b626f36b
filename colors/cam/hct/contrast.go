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

	"github.com/tonalkit/matscheme/colors/cam/cie"
	"github.com/tonalkit/matscheme/math32"
)

// ContrastRatio returns the contrast ratio between the given two colors.
// The contrast ratio will be between 1 and 21.
func ContrastRatio(a, b color.Color) float32 {
	ah := FromColor(a)
	bh := FromColor(b)
	return ToneContrastRatio(ah.Tone, bh.Tone)
}

// ToneContrastRatio returns the contrast ratio between the given two tones.
// The contrast ratio will be between 1 and 21, and the tones should be
// between 0 and 100 and will be clamped to such.
func ToneContrastRatio(a, b float32) float32 {
	a = math32.Clamp(a, 0, 100)
	b = math32.Clamp(b, 0, 100)
	return ContrastRatioOfYs(float32(cie.LToY(float64(a))), float32(cie.LToY(float64(b))))
}

// ContrastColor returns the color that will ensure that the given contrast ratio
// between the given color and the resulting color is met. If the given ratio can
// not be achieved with the given color, it returns the color that would result in
// the highest contrast ratio. The ratio must be between 1 and 21. If the tone of
// the given color is greater than 50, it tries darker tones first, and otherwise
// it tries lighter tones first.
func ContrastColor(c color.Color, ratio float32) color.RGBA {
	h := FromColor(c)
	ct := ContrastTone(h.Tone, ratio)
	return h.WithTone(ct).AsRGBA()
}

// ContrastTone returns the tone that will ensure that the given contrast ratio
// between the given tone and the resulting tone is met. If the given ratio can
// not be achieved with the given tone, it returns the tone that would result in
// the highest contrast ratio. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21. If the given tone is greater than 50, it tries darker tones first,
// and otherwise it tries lighter tones first.
func ContrastTone(tone, ratio float32) float32 {
	ct, ok := ContrastToneTry(tone, ratio)
	if ok {
		return ct
	}
	dcr := ToneContrastRatio(tone, 0)
	lcr := ToneContrastRatio(tone, 100)
	if dcr > lcr {
		return 0
	}
	return 100
}

// ContrastToneTry returns the tone that will ensure that the given contrast ratio
// between the given tone and the resulting tone is met. It returns -1, false if
// the given ratio can not be achieved with the given tone. The tone must be between 0
// and 100 and the ratio must be between 1 and 21. If the given tone is greater than 50,
// it tries darker tones first, and otherwise it tries lighter tones first.
func ContrastToneTry(tone, ratio float32) (float32, bool) {
	if tone > 50 {
		if d, ok := ContrastToneDarkerTry(tone, ratio); ok {
			return d, true
		}
		if l, ok := ContrastToneLighterTry(tone, ratio); ok {
			return l, true
		}
		return -1, false
	}
	if l, ok := ContrastToneLighterTry(tone, ratio); ok {
		return l, true
	}
	if d, ok := ContrastToneDarkerTry(tone, ratio); ok {
		return d, true
	}
	return -1, false
}

// contrastTolerance is the amount by which a computed Y may leave
// the 0-100 range, or a ratio may fall short, and still be accepted.
const contrastTolerance = 0.04

// ContrastToneLighterTry returns a tone greater than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns -1, false if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneLighterTry(tone, ratio float32) (float32, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	darkY := cie.LToY(float64(tone))
	lightY := float64(ratio)*(darkY+5) - 5
	if lightY > 100+contrastTolerance {
		return -1, false
	}
	lightY = min(lightY, 100)
	if ratio-ContrastRatioOfYs(float32(lightY), float32(darkY)) > contrastTolerance {
		return -1, false
	}
	return math32.Clamp(float32(cie.YToL(lightY)), 0, 100), true
}

// ContrastToneDarkerTry returns a tone less than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns -1, false if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneDarkerTry(tone, ratio float32) (float32, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	lightY := cie.LToY(float64(tone))
	darkY := (lightY+5)/float64(ratio) - 5
	if darkY < -contrastTolerance {
		return -1, false
	}
	darkY = max(darkY, 0)
	if ratio-ContrastRatioOfYs(float32(lightY), float32(darkY)) > contrastTolerance {
		return -1, false
	}
	return math32.Clamp(float32(cie.YToL(darkY)), 0, 100), true
}

// ContrastRatioOfYs returns the contrast ratio of two XYZ Y values.
func ContrastRatioOfYs(a, b float32) float32 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 5) / (darker + 5)
}
