// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// ColorProfile is the termenv color profile used for colored
// level names. It is detected from the output when
// [SetDefaultLogger] is called.
var ColorProfile = termenv.Ascii

// Handler is a [slog.Handler] that writes text records with the
// level name colored according to its severity.
type Handler struct {
	text *slog.TextHandler
	out  io.Writer
	mu   *sync.Mutex
}

// NewHandler returns a new [Handler] writing to the given writer
// at the given minimum level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	h := &Handler{out: w, mu: &sync.Mutex{}}
	h.text = slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	})
	return h
}

func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	lv, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	return slog.String(slog.LevelKey, LevelString(lv))
}

// LevelString returns the name of the given level, colored
// using [ColorProfile].
func LevelString(lv slog.Level) string {
	s := termenv.String(strings.ToLower(lv.String()))
	if ColorProfile == termenv.Ascii {
		return s.String()
	}
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(ColorProfile.Color("#ff5449")).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(ColorProfile.Color("#e2c46c"))
	case lv >= slog.LevelInfo:
		s = s.Foreground(ColorProfile.Color("#7fd0ff"))
	default:
		s = s.Faint()
	}
	return s.String()
}

func (h *Handler) Enabled(ctx context.Context, lv slog.Level) bool {
	return h.text.Enabled(ctx, lv)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.text.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{text: h.text.WithAttrs(attrs).(*slog.TextHandler), out: h.out, mu: h.mu}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{text: h.text.WithGroup(name).(*slog.TextHandler), out: h.out, mu: h.mu}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	ColorProfile = termenv.NewOutput(os.Stderr).EnvColorProfile()
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}
