// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonalkit/matscheme/base/iox/jsonx"
	"github.com/tonalkit/matscheme/base/iox/tomlx"
	"github.com/tonalkit/matscheme/base/iox/yamlx"
)

type seeds struct {
	Mode    string `json:"mode" toml:"mode" yaml:"mode"`
	Primary string `json:"primary" toml:"primary" yaml:"primary"`
}

func TestFormats(t *testing.T) {
	want := seeds{Mode: "dark", Primary: "#00ff00"}

	var buf bytes.Buffer
	assert.NoError(t, tomlx.Write(want, &buf))
	assert.Contains(t, buf.String(), "primary = ")
	var got seeds
	assert.NoError(t, tomlx.Read(&got, &buf))
	assert.Equal(t, want, got)

	b, err := yamlx.WriteBytes(want)
	assert.NoError(t, err)
	got = seeds{}
	assert.NoError(t, yamlx.ReadBytes(&got, b))
	assert.Equal(t, want, got)

	fn := filepath.Join(t.TempDir(), "seeds.json")
	assert.NoError(t, jsonx.Save(want, fn))
	got = seeds{}
	assert.NoError(t, jsonx.Open(&got, fn))
	assert.Equal(t, want, got)
}
