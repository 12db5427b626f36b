// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonalkit/matscheme/base/errors"
	"github.com/tonalkit/matscheme/base/iox/yamlx"
	"github.com/tonalkit/matscheme/colors/matcolor"
)

// execute runs the root command with the given arguments
// and returns what it wrote to standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestBuildText(t *testing.T) {
	out, err := execute(t, "build", "--primary", "#00ff00", "--mode", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "# theme-0 (dark)")
	assert.Contains(t, out, "\nprimary                    #A5D395\n")
	assert.Contains(t, out, "\nsurface                    #121410\n")
	assert.NotContains(t, out, "(light)")
}

func TestBuildJSON(t *testing.T) {
	out, err := execute(t, "build", "--primary", "lime", "-f", "json")
	require.NoError(t, err)
	doc := map[string]map[string]map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Contains(t, doc, "theme-0")
	assert.Equal(t, "#406836", doc["theme-0"]["light"]["primary"])
	assert.Equal(t, "#A5D395", doc["theme-0"]["dark"]["primary"])
	assert.Len(t, doc["theme-0"]["dark"], len(matcolor.RoleValues()))
}

func TestBuildConfig(t *testing.T) {
	cfg := writeFile(t, "scheme.toml", `
mode = "light"
primary = "#4285f4"

[[themes]]
name = "blue"

[[themes]]
name = "green"
primary = "#00ff00"
`)
	out := filepath.Join(t.TempDir(), "out.yaml")
	_, err := execute(t, "build", "--config", cfg, "--format", "yaml", "--out", out)
	require.NoError(t, err)
	doc := map[string]map[string]map[string]string{}
	require.NoError(t, yamlx.Open(&doc, out))
	assert.Len(t, doc, 2)
	assert.Equal(t, "#406836", doc["green"]["light"]["primary"])
	assert.NotContains(t, doc["blue"], "dark")

	// flags override the config
	res, err := execute(t, "build", "--config", cfg, "--mode", "dark", "--primary", "#00ff00", "-f", "json")
	require.NoError(t, err)
	doc = map[string]map[string]map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(res), &doc))
	assert.Equal(t, doc["blue"], doc["green"])
	assert.Equal(t, "#A5D395", doc["blue"]["dark"]["primary"])
}

func TestBuildSwatch(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "build", "--primary", "#00ff00", "--swatch", filepath.Join(dir, "green.png"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "green-theme-0-dark.png"))
	assert.FileExists(t, filepath.Join(dir, "green-theme-0-light.png"))
}

func TestBuildErrors(t *testing.T) {
	_, err := execute(t, "build")
	assert.Error(t, err)
	_, err = execute(t, "build", "--primary", "#00ff00", "--format", "xml")
	assert.Error(t, err)
	_, err = execute(t, "build", "--primary", "#00ff00", "--mode", "dim")
	assert.Error(t, err)
	_, err = execute(t, "build", "--primary", "#00ff00", "--secondary", "nope")
	assert.Error(t, err)
	_, err = execute(t, "build", "--config", filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
	_, err = execute(t, "watch")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "--primary", "#00ff00", "--mode", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "theme-0 (light)")
	assert.Contains(t, out, "on-primary-container")
	assert.Contains(t, out, "#406836")
	// not a terminal, so no escape sequences
	assert.NotContains(t, out, "\x1b[")

	// content roles carry their contrast ratio
	ratios := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) >= 3 && f[0] == "Aa" {
			ratios[f[1]] = strings.Join(f[3:], " ")
		}
	}
	assert.Len(t, ratios, len(matcolor.RoleValues()))
	assert.Empty(t, ratios["primary"])
	assert.Regexp(t, `^\d+\.\d\d:1$`, ratios["on-primary"])
	assert.Regexp(t, `^\d+\.\d\d:1$`, ratios["inverse-on-surface"])
}

// failWriter fails every write after the first n.
type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("write failed")
	}
	w.n--
	return len(p), nil
}

func TestWriteTextError(t *testing.T) {
	ts := []matcolor.Theme{{Primary: "#00ff00"}}
	bs, err := buildThemes(context.Background(), ts)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	roles := len(matcolor.RoleValues())
	// the first heading, a role line, and the second heading
	for _, n := range []int{0, 1, roles + 1} {
		assert.Error(t, writeText(&failWriter{n: n}, bs), n)
	}
	assert.NoError(t, writeText(&failWriter{n: 2 * (roles + 1)}, bs))
}

func TestRenderSchemesColor(t *testing.T) {
	ts := []matcolor.Theme{{Name: "g", Primary: "#00ff00", Mode: "dark"}}
	bs, err := buildThemes(context.Background(), ts)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, renderSchemes(&b, bs, termenv.TrueColor))
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "g (dark)")
}

func TestBuildThemes(t *testing.T) {
	ts := []matcolor.Theme{
		{Primary: "#00ff00"},
		{Name: "blue", Primary: "#4285f4", Mode: "light"},
		{Name: "red", Primary: "red", Tertiary: "spin-30", Mode: "dark"},
	}
	bs, err := buildThemes(context.Background(), ts)
	require.NoError(t, err)
	require.Len(t, bs, 4)
	assert.Equal(t, "theme-0", bs[0].Label)
	assert.Equal(t, matcolor.Dark, bs[0].Mode)
	assert.Equal(t, matcolor.Light, bs[1].Mode)
	assert.Equal(t, "blue", bs[2].Label)
	assert.Equal(t, "red", bs[3].Label)
	k, err := ts[0].Key()
	require.NoError(t, err)
	assert.Equal(t, matcolor.Build(matcolor.Dark, k), bs[0].Scheme)
	assert.Equal(t, matcolor.Build(matcolor.Light, k), bs[1].Scheme)

	_, err = buildThemes(context.Background(), []matcolor.Theme{{Name: "empty"}})
	assert.Error(t, err)
}

func TestWatchFile(t *testing.T) {
	fn := writeFile(t, "scheme.toml", `primary = "#00ff00"`)
	updates := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, fn, func() error {
			updates <- struct{}{}
			return nil
		})
	}()

	wait := func() {
		t.Helper()
		select {
		case <-updates:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for update")
		}
	}
	wait()
	require.NoError(t, os.WriteFile(fn, []byte(`primary = "#4285f4"`), 0666))
	wait()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(fn), "other.txt"), []byte("x"), 0666))
	cancel()
	assert.NoError(t, <-done)
}
