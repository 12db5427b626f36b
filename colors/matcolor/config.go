// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/tonalkit/matscheme/base/iox"
	"github.com/tonalkit/matscheme/base/iox/jsonx"
	"github.com/tonalkit/matscheme/base/iox/tomlx"
	"github.com/tonalkit/matscheme/base/iox/yamlx"
	"github.com/tonalkit/matscheme/colors"
)

// Theme is the seed configuration of one color scheme, as read
// from a config file. Colors are strings in any form accepted by
// [colors.FromString]; seeds other than the primary may also be
// transformations of it, such as "spin-60" or "desaturate-20".
type Theme struct {

	// Name is an optional label for the theme
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Mode is "dark", "light", or "both"; empty means both
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`

	Primary        string `json:"primary,omitempty" yaml:"primary,omitempty" toml:"primary,omitempty"`
	Secondary      string `json:"secondary,omitempty" yaml:"secondary,omitempty" toml:"secondary,omitempty"`
	Tertiary       string `json:"tertiary,omitempty" yaml:"tertiary,omitempty" toml:"tertiary,omitempty"`
	Neutral        string `json:"neutral,omitempty" yaml:"neutral,omitempty" toml:"neutral,omitempty"`
	NeutralVariant string `json:"neutral-variant,omitempty" yaml:"neutral-variant,omitempty" toml:"neutral-variant,omitempty"`
	Error          string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// Config is a seed config file. The top-level theme fields are
// defaults for every entry of Themes; if Themes is empty,
// the top-level theme is the only one.
type Config struct {
	Theme `yaml:",inline"`

	Themes []Theme `json:"themes,omitempty" yaml:"themes,omitempty" toml:"themes,omitempty"`
}

// DecoderFor returns the [iox.DecoderFunc] for the format
// of the given filename, based on its extension.
func DecoderFor(filename string) (iox.DecoderFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.NewDecoder, nil
	case ".yaml", ".yml":
		return yamlx.NewDecoder, nil
	case ".json":
		return jsonx.NewDecoder, nil
	default:
		return nil, fmt.Errorf("matcolor: unsupported config file extension %q", ext)
	}
}

// EncoderFor returns the [iox.EncoderFunc] for the given
// format name: "toml", "yaml", or "json".
func EncoderFor(format string) (iox.EncoderFunc, error) {
	switch strings.ToLower(format) {
	case "toml":
		return tomlx.NewEncoder, nil
	case "yaml", "yml":
		return yamlx.NewEncoder, nil
	case "json":
		return jsonx.NewIndentEncoder, nil
	}
	return nil, fmt.Errorf("matcolor: unsupported format %q", format)
}

// OpenConfig reads a [Config] from the given file,
// in the format given by its extension.
func OpenConfig(filename string) (*Config, error) {
	dec, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	if err := iox.Open(c, filename, dec); err != nil {
		return nil, fmt.Errorf("matcolor: reading config %q: %w", filename, err)
	}
	return c, nil
}

// AllThemes returns the themes of the config, with empty
// fields filled in from the top-level theme.
func (c *Config) AllThemes() []Theme {
	if len(c.Themes) == 0 {
		return []Theme{c.Theme}
	}
	ts := make([]Theme, len(c.Themes))
	for i, t := range c.Themes {
		ts[i] = t.Overlay(c.Theme)
	}
	return ts
}

// Key returns the [Key] of the top-level theme.
func (c *Config) Key() (*Key, error) {
	return c.Theme.Key()
}

// Overlay returns the theme with its empty fields set
// from the given defaults.
func (t Theme) Overlay(def Theme) Theme {
	set := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	set(&t.Name, def.Name)
	set(&t.Mode, def.Mode)
	set(&t.Primary, def.Primary)
	set(&t.Secondary, def.Secondary)
	set(&t.Tertiary, def.Tertiary)
	set(&t.Neutral, def.Neutral)
	set(&t.NeutralVariant, def.NeutralVariant)
	set(&t.Error, def.Error)
	return t
}

// Key parses the seed colors of the theme into a [Key].
// The primary color is required.
func (t Theme) Key() (*Key, error) {
	if t.Primary == "" {
		return nil, fmt.Errorf("matcolor: theme %q has no primary color", t.Name)
	}
	primary, err := colors.FromString(t.Primary, nil)
	if err != nil {
		return nil, fmt.Errorf("matcolor: primary: %w", err)
	}
	k := KeyFromPrimary(primary)
	seeds := []struct {
		name string
		str  string
		dst  **color.RGBA
	}{
		{"secondary", t.Secondary, &k.Secondary},
		{"tertiary", t.Tertiary, &k.Tertiary},
		{"neutral", t.Neutral, &k.Neutral},
		{"neutral-variant", t.NeutralVariant, &k.NeutralVariant},
		{"error", t.Error, &k.Error},
	}
	for _, s := range seeds {
		if s.str == "" {
			continue
		}
		c, err := colors.FromString(s.str, primary)
		if err != nil {
			return nil, fmt.Errorf("matcolor: %s: %w", s.name, err)
		}
		*s.dst = &c
	}
	return k, nil
}

// Modes returns the modes the theme should be built in.
func (t Theme) Modes() ([]Mode, error) {
	switch strings.ToLower(t.Mode) {
	case "", "both":
		return []Mode{Dark, Light}, nil
	}
	var m Mode
	if err := m.SetString(t.Mode); err != nil {
		return nil, fmt.Errorf("matcolor: theme %q: %w", t.Name, err)
	}
	return []Mode{m}, nil
}
