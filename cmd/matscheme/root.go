// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"github.com/tonalkit/matscheme/base/logx"
)

// rootCmd returns the base command with all of its subcommands.
func rootCmd() *cobra.Command {
	var vv, v, q bool
	cmd := &cobra.Command{
		Use:   "matscheme",
		Short: "Build Material Design 3 color schemes from seed colors",
		Long: `matscheme builds Material Design 3 light and dark color schemes
from a primary seed color and optional secondary, tertiary, neutral,
neutral variant, and error seeds.

Seeds are given as flags or in a TOML, YAML, or JSON config file;
flags override the config file.

Examples:
  matscheme build --primary "#00ff00"
  matscheme build --config scheme.toml --format yaml --out scheme.yaml
  matscheme show --primary rebeccapurple --mode dark
  matscheme watch --config scheme.toml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&v, "verbose", "v", false, "Show info messages")
	pf.BoolVar(&vv, "vv", false, "Show debug messages")
	pf.BoolVarP(&q, "quiet", "q", false, "Only show errors")

	cmd.AddCommand(buildCmd())
	cmd.AddCommand(showCmd())
	cmd.AddCommand(watchCmd())
	return cmd
}
