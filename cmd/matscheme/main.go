// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command matscheme builds Material Design 3 color schemes
// from seed colors and prints, exports, or previews them.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/tonalkit/matscheme/base/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if errors.Log(err) != nil {
		os.Exit(1)
	}
}
