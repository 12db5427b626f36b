// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDegrees(t *testing.T) {
	assert.Equal(t, float32(0), SanitizeDegrees(0))
	assert.Equal(t, float32(0), SanitizeDegrees(360))
	assert.Equal(t, float32(10), SanitizeDegrees(370))
	assert.Equal(t, float32(350), SanitizeDegrees(-10))
	assert.Equal(t, float32(20), SanitizeDegrees(-700))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp[float32](3, 0, 1))
	assert.Equal(t, 0, Clamp(-4, 0, 255))
	assert.Equal(t, float32(0.5), Clamp[float32](0.5, 0, 1))

	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(10), Lerp(0, 10, 1))
	assert.Equal(t, float32(-1), Sign(-0.1))
	assert.Equal(t, float32(1), Sign(0))
}
