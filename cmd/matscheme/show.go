// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var seeds seedFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show color schemes as swatches in the terminal",
		Long: `Render every role of the color schemes for the given seeds
as a colored swatch, using the color support of the terminal.

Examples:
  matscheme show --primary "#4285f4"
  matscheme show --config scheme.yaml --mode light`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := seeds.load(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return renderSchemes(w, bs, outputProfile(w))
		},
	}
	seeds.add(cmd.Flags())
	return cmd
}

// outputProfile returns the termenv color profile of the given output.
func outputProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}
