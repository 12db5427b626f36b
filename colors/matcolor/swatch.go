// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image"
	"image/draw"

	"github.com/tonalkit/matscheme/base/iox/imagex"
)

// SwatchColumns is the number of role swatches per row of [Scheme.Swatch].
const SwatchColumns = 6

// Swatch returns an image with one square of the given size
// for every role of the scheme, in [Role] order,
// laid out in rows of [SwatchColumns].
func (s *Scheme) Swatch(size int) *image.RGBA {
	roles := s.Roles()
	rows := (len(roles) + SwatchColumns - 1) / SwatchColumns
	img := image.NewRGBA(image.Rect(0, 0, SwatchColumns*size, rows*size))
	for i, rc := range roles {
		x, y := (i%SwatchColumns)*size, (i/SwatchColumns)*size
		r := image.Rect(x, y, x+size, y+size)
		draw.Draw(img, r, image.NewUniform(rc.Color), image.Point{}, draw.Src)
	}
	return img
}

// SaveSwatch saves [Scheme.Swatch] to the given file, in the image
// format given by its extension.
func (s *Scheme) SaveSwatch(filename string, size int) error {
	return imagex.Save(s.Swatch(size), filename)
}
