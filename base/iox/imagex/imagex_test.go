// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("tif")
	assert.NoError(t, err)
	assert.Equal(t, TIFF, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("svg")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c := color.RGBA{165, 211, 149, 255}
	for y := range 4 {
		for x := range 4 {
			im.SetRGBA(x, y, c)
		}
	}
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(t.TempDir(), "swatch"+ext)
		assert.NoError(t, Save(im, fn))
		got, _, err := Open(fn)
		if assert.NoError(t, err, ext) {
			gc := color.RGBAModel.Convert(got.At(2, 2)).(color.RGBA)
			assert.True(t, CompareColors(c, gc, 0), ext)
		}
	}

	var buf bytes.Buffer
	assert.Error(t, Write(im, &buf, None))
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 20, 30, 255}, color.RGBA{11, 19, 30, 255}, 1))
	assert.False(t, CompareColors(color.RGBA{10, 20, 30, 255}, color.RGBA{12, 20, 30, 255}, 1))
	assert.True(t, CompareUint8(0, 2, 2))
	assert.False(t, CompareUint8(255, 0, 254))
}
