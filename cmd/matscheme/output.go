// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tonalkit/matscheme/base/iox"
	"github.com/tonalkit/matscheme/colors"
	"github.com/tonalkit/matscheme/colors/cam/hct"
	"github.com/tonalkit/matscheme/colors/matcolor"
)

// document returns the schemes as nested maps of
// theme label, mode, and role to hex color.
func document(bs []built) map[string]map[string]map[string]string {
	doc := map[string]map[string]map[string]string{}
	for _, b := range bs {
		if doc[b.Label] == nil {
			doc[b.Label] = map[string]map[string]string{}
		}
		doc[b.Label][b.Mode.String()] = b.Scheme.Map()
	}
	return doc
}

// writeSchemes writes the schemes in the given format:
// text, json, yaml, or toml.
func writeSchemes(w io.Writer, bs []built, format string) error {
	if strings.ToLower(format) == "text" {
		return writeText(w, bs)
	}
	enc, err := matcolor.EncoderFor(format)
	if err != nil {
		return err
	}
	return iox.Write(document(bs), w, enc)
}

// swatchContrast is the contrast ratio of swatch labels.
const swatchContrast = 4.5

func writeText(w io.Writer, bs []built) error {
	for i, b := range bs {
		sep := ""
		if i > 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s# %s (%s)\n", sep, b.Label, b.Mode); err != nil {
			return err
		}
		for _, rc := range b.Scheme.Roles() {
			if _, err := fmt.Fprintf(w, "%-26s %s\n", rc.Role, colors.AsHex(rc.Color)); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderSchemes renders the schemes as rows of color swatches,
// using the color profile of the given output. Each swatch is
// labeled in a color readable on it, and content roles show
// their contrast ratio against the role they are drawn on.
func renderSchemes(w io.Writer, bs []built, profile termenv.Profile) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	for i, b := range bs {
		label := colors.Spaced(i, b.Mode == matcolor.Dark)
		head := r.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.AsHex(label)))
		var sb strings.Builder
		sb.WriteString(head.Render(fmt.Sprintf("%s (%s)", b.Label, b.Mode)))
		sb.WriteByte('\n')
		for _, rc := range b.Scheme.Roles() {
			hex := colors.AsHex(rc.Color)
			fg := colors.AsHex(hct.ContrastColor(rc.Color, swatchContrast))
			swatch := r.NewStyle().Background(lipgloss.Color(hex)).Foreground(lipgloss.Color(fg)).Render(" Aa ")
			sb.WriteString(fmt.Sprintf("%s %-26s %s", swatch, rc.Role, hex))
			if ratio, ok := b.Scheme.Contrast(rc.Role); ok {
				sb.WriteString(fmt.Sprintf(" %5.2f:1", ratio))
			}
			sb.WriteByte('\n')
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
