// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tonalkit/matscheme/colors/matcolor"
	"golang.org/x/sync/errgroup"
)

// seedFlags are the seed flags shared by the commands.
type seedFlags struct {
	theme  matcolor.Theme
	config string
}

func (s *seedFlags) add(fs *pflag.FlagSet) {
	fs.StringVar(&s.config, "config", "", "Seed config file (.toml, .yaml, or .json)")
	fs.StringVar(&s.theme.Mode, "mode", "", "Scheme mode: dark, light, or both (default both)")
	fs.StringVar(&s.theme.Primary, "primary", "", "Primary seed color")
	fs.StringVar(&s.theme.Secondary, "secondary", "", "Secondary seed color (default primary hue)")
	fs.StringVar(&s.theme.Tertiary, "tertiary", "", "Tertiary seed color (default primary hue + 60)")
	fs.StringVar(&s.theme.Neutral, "neutral", "", "Neutral seed color (default primary hue)")
	fs.StringVar(&s.theme.NeutralVariant, "neutral-variant", "", "Neutral variant seed color (default primary hue)")
	fs.StringVar(&s.theme.Error, "error", "", "Error seed color (default #ff0000)")
}

// themes returns the themes given by the config file, if any,
// with the flags applied over each of them.
func (s *seedFlags) themes() ([]matcolor.Theme, error) {
	if s.config == "" {
		return []matcolor.Theme{s.theme}, nil
	}
	c, err := matcolor.OpenConfig(s.config)
	if err != nil {
		return nil, err
	}
	ts := c.AllThemes()
	for i, t := range ts {
		ts[i] = s.theme.Overlay(t)
	}
	return ts, nil
}

// built is one scheme built from a theme.
type built struct {
	Label  string
	Mode   matcolor.Mode
	Scheme matcolor.Scheme
}

// buildThemes builds every mode of every theme concurrently,
// returning the schemes in theme then mode order.
func buildThemes(ctx context.Context, themes []matcolor.Theme) ([]built, error) {
	var jobs []built
	var keys []*matcolor.Key
	for i, t := range themes {
		label := t.Name
		if label == "" {
			label = fmt.Sprintf("theme-%d", i)
		}
		k, err := t.Key()
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", label, err)
		}
		modes, err := t.Modes()
		if err != nil {
			return nil, err
		}
		for _, m := range modes {
			jobs = append(jobs, built{Label: label, Mode: m})
			keys = append(keys, k)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			jobs[i].Scheme = matcolor.Build(jobs[i].Mode, keys[i])
			slog.Debug("built scheme", "theme", jobs[i].Label, "mode", jobs[i].Mode, "primary", jobs[i].Scheme.Primary)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Info("built schemes", "themes", len(themes), "schemes", len(jobs))
	return jobs, nil
}

// load reads the themes for the command and builds them.
func (s *seedFlags) load(cmd *cobra.Command) ([]built, error) {
	ts, err := s.themes()
	if err != nil {
		return nil, err
	}
	return buildThemes(cmd.Context(), ts)
}
