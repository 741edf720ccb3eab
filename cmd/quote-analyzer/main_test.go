// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mutual-axioms/internal/index"
	"github.com/pdiddy/mutual-axioms/pkg/types"
)

func TestResolveConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := resolveConfig(v)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestResolveConfigOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("sources", []string{"one.md", "two.md"})
	v.Set("participants.a", "one.md")
	v.Set("participants.b", "two.md")
	v.Set("format", "json")
	v.Set("color", "always")

	cfg, err := resolveConfig(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"one.md", "two.md"}, cfg.Sources)
	assert.Equal(t, types.Participants{A: "one.md", B: "two.md"}, cfg.Participants)
	assert.Equal(t, types.FormatJSON, cfg.Format)
	assert.Equal(t, types.ColorAlways, cfg.Color)
}

func TestResolveConfigRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		key, value, errMsg string
	}{
		{"format", "xml", "unknown output format"},
		{"color", "rainbow", "unknown color mode"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := resolveConfig(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func writeQuotes(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"adrian_quotes.md":  "# Adrian\n\n> \"Build it.\"\n> — X\n\n📅 Added: 2024-02-02\n",
		"ernesto_quotes.md": "# Ernesto\n\n> \"Build it.\"\n> — X\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRootCommandReport(t *testing.T) {
	dir := writeQuotes(t)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--dir", dir, "--color", "never"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	report := out.String()
	assert.Contains(t, report, "Found 2 total quotes:")
	assert.Contains(t, report, "Found in: adrian_quotes.md, ernesto_quotes.md")
	assert.Contains(t, report, "File: ernesto_quotes.md")
	assert.Contains(t, report, "Added: 2024-02-02 (in adrian_quotes.md)")
	assert.Contains(t, report, "Consider moving these to shared_favorites.md")

	assert.Contains(t, errOut.String(), "shared_favorites.md")
	assert.Contains(t, errOut.String(), "retired_quotes.md")
}

func TestSearchCommandJSON(t *testing.T) {
	dir := writeQuotes(t)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"search", "--dir", dir, "--json", "build"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var got []types.QuoteRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "adrian_quotes.md", got[0].SourceFile)
	assert.Equal(t, "ernesto_quotes.md", got[1].SourceFile)
}

func TestFormatSearchOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatSearchOutput(&buf, nil, false))
	assert.Equal(t, "No quotes found.\n", buf.String())

	buf.Reset()
	require.NoError(t, formatSearchOutput(&buf, nil, true))
	assert.JSONEq(t, "[]", buf.String())

	buf.Reset()
	results := []types.QuoteRecord{
		{Text: "line one\n> line two", Author: "A", SourceFile: "a.md"},
		{Text: "Dated.", Author: "B", Date: "2020-01-01", SourceFile: "b.md"},
	}
	require.NoError(t, formatSearchOutput(&buf, results, false))
	out := buf.String()
	assert.Contains(t, out, "line one > line two")
	assert.Contains(t, out, "2020-01-01")
	assert.Contains(t, out, "2 results")
}

func TestFormatAuthorsOutput(t *testing.T) {
	var buf bytes.Buffer
	summaries := []index.AuthorSummary{
		{Author: "X", Count: 2, Dated: 1, Files: []string{"a.md", "b.md"}},
	}
	require.NoError(t, formatAuthorsOutput(&buf, summaries, false))
	assert.Contains(t, buf.String(), "a.md, b.md")
	assert.Contains(t, buf.String(), "1 authors")

	buf.Reset()
	require.NoError(t, formatAuthorsOutput(&buf, nil, false))
	assert.Equal(t, "No authors found.\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate("éééééééééééé", 10))
}
