// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonalkit/matscheme/base/iox/imagex"
)

func TestSwatch(t *testing.T) {
	s := BuildColorScheme(Dark, green)
	img := s.Swatch(4)
	assert.Equal(t, 4*SwatchColumns, img.Bounds().Dx())
	assert.Equal(t, 4*6, img.Bounds().Dy())
	assert.Equal(t, s.Primary, img.RGBAAt(0, 0))
	assert.Equal(t, s.OnPrimary, img.RGBAAt(5, 3))
	assert.Equal(t, s.SurfaceContainerLowest, img.RGBAAt(4*5+3, 4*5+3))

	fn := filepath.Join(t.TempDir(), "dark.png")
	require.NoError(t, s.SaveSwatch(fn, 4))
	saved, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, img.Bounds(), saved.Bounds())
}
