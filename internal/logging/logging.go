// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the leveled key/value logger used for diagnostics.
// Diagnostics go to stderr so stdout carries only the report.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps a clean run silent apart from the report.
const DefaultLevel = log.WarnLevel

// New returns a logger writing to w at the named level. An empty or unknown
// level falls back to DefaultLevel.
func New(level string, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  ParseLevel(level),
		Prefix: "quote-analyzer",
	})
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel converts a level name to a log.Level, case-insensitively.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return DefaultLevel
	}
}
