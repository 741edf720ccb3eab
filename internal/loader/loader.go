// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader reads the configured quote sources from disk.
// A source that cannot be read is logged and reported with its error; it
// never stops the remaining sources from loading.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/mutual-axioms/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source is the raw content of one configured source.
type Source struct {
	// Name is the base name records are attributed to.
	Name string

	// Path is the filesystem path that was read.
	Path string

	// Content is the decoded text. Empty when Err is set.
	Content string

	// Err is the read failure, if any.
	Err error
}

// OK reports whether the source was read.
func (s Source) OK() bool {
	return s.Err == nil
}

// Load reads every source in cfg.Sources, in order. Relative names resolve
// against cfg.Dir. Unreadable sources produce a warning and a Source with
// Err set.
func Load(cfg types.AnalyzerConfig, logger *log.Logger) []Source {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	sources := make([]Source, 0, len(cfg.Sources))
	for _, name := range cfg.Sources {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, name)
		}

		src := Source{Name: filepath.Base(name), Path: path}
		content, err := readSource(path)
		if err != nil {
			logger.Warn("could not read source", "file", path, "err", err)
			src.Err = err
		} else {
			logger.Debug("read source", "file", path, "bytes", len(content))
			src.Content = content
		}
		sources = append(sources, src)
	}
	return sources
}

func readSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("reading %s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}
