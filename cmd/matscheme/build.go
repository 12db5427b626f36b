// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var seeds seedFlags
	var format, out, swatch string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build color schemes and write them as text, JSON, YAML, or TOML",
		Long: `Build the color schemes for the given seeds and write them to
standard output or a file.

Examples:
  matscheme build --primary "#00ff00" --mode dark
  matscheme build --config scheme.toml --format json --out scheme.json
  matscheme build --primary teal --swatch teal.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := seeds.load(cmd)
			if err != nil {
				return err
			}
			if swatch != "" {
				if err := saveSwatches(bs, swatch); err != nil {
					return err
				}
			}
			if out == "" {
				return writeSchemes(cmd.OutOrStdout(), bs, format)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			bw := bufio.NewWriter(f)
			if err := writeSchemes(bw, bs, format); err != nil {
				return err
			}
			slog.Info("wrote schemes", "file", out, "format", format)
			return bw.Flush()
		},
	}
	seeds.add(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, yaml, or toml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default standard output)")
	cmd.Flags().StringVar(&swatch, "swatch", "", "Also save a swatch image of each scheme, named after this file (.png, .jpg, .gif, .tif, or .bmp)")
	return cmd
}

// saveSwatches saves a swatch image of every scheme, adding the
// theme label and mode to the given file name when there is
// more than one scheme.
func saveSwatches(bs []built, filename string) error {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	for _, b := range bs {
		fn := filename
		if len(bs) > 1 {
			fn = fmt.Sprintf("%s-%s-%s%s", base, b.Label, b.Mode, ext)
		}
		if err := b.Scheme.SaveSwatch(fn, 32); err != nil {
			return fmt.Errorf("saving swatch %q: %w", fn, err)
		}
		slog.Info("saved swatch", "file", fn)
	}
	return nil
}
