// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tonalkit/matscheme/base/errors"
)

func watchCmd() *cobra.Command {
	var seeds seedFlags
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show color schemes and update them when the config file changes",
		Long: `Render the color schemes of a config file like show does,
and render them again every time the file is saved, until interrupted.

Example:
  matscheme watch --config scheme.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seeds.config == "" {
				return errors.New("watch requires --config")
			}
			w := cmd.OutOrStdout()
			profile := outputProfile(w)
			return watchFile(cmd.Context(), seeds.config, func() error {
				bs, err := seeds.load(cmd)
				if err != nil {
					return err
				}
				return renderSchemes(w, bs, profile)
			})
		},
	}
	seeds.add(cmd.Flags())
	return cmd
}

// watchFile calls update once and then again every time the given
// file is written or replaced, until the context is done. Errors from
// update are logged and do not stop watching.
func watchFile(ctx context.Context, filename string, update func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory, since editors often replace the file
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %q: %w", filename, err)
	}
	errors.Log(update())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("config changed", "file", ev.Name, "op", ev.Op)
			errors.Log(update())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
