// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an Analysis for people (colourised console text)
// or for tools (YAML, JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mutual-axioms/pkg/types"
)

// Renderer writes an Analysis in one output format.
type Renderer interface {
	Render(a types.Analysis) error
}

// New returns the renderer for format writing to w. An empty format means
// text. mode only affects the text renderer.
func New(format types.OutputFormat, w io.Writer, mode types.ColorMode) (Renderer, error) {
	switch format {
	case "", types.FormatText:
		return NewConsole(w, ColorEnabled(w, mode)), nil
	case types.FormatYAML:
		return YAML{w: w}, nil
	case types.FormatJSON:
		return JSON{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, yaml, or json)", format)
	}
}

// ColorEnabled decides whether console output to w is colourised. In auto
// mode colour is used only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(w io.Writer, mode types.ColorMode) bool {
	switch mode {
	case types.ColorAlways:
		return true
	case types.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseColorMode validates a colour mode name. Empty means auto.
func ParseColorMode(s string) (types.ColorMode, error) {
	switch m := types.ColorMode(s); m {
	case "":
		return types.ColorAuto, nil
	case types.ColorAuto, types.ColorAlways, types.ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always, or never)", s)
	}
}

// YAML renders the Analysis as a YAML document.
type YAML struct {
	w io.Writer
}

// Render implements Renderer.
func (r YAML) Render(a types.Analysis) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(&a); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return enc.Close()
}

// JSON renders the Analysis as indented JSON.
type JSON struct {
	w io.Writer
}

// Render implements Renderer.
func (r JSON) Render(a types.Analysis) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}
