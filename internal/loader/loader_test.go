// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mutual-axioms/internal/logging"
	"github.com/pdiddy/mutual-axioms/pkg/types"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "alpha")
	writeFile(t, dir, "b.md", "\xEF\xBB\xBFbeta")

	cfg := types.AnalyzerConfig{Dir: dir, Sources: []string{"a.md", "missing.md", "b.md"}}
	got := Load(cfg, logging.Discard())

	require.Len(t, got, 3)
	assert.Equal(t, "a.md", got[0].Name)
	assert.Equal(t, "alpha", got[0].Content)
	assert.True(t, got[0].OK())

	assert.Equal(t, "missing.md", got[1].Name)
	assert.False(t, got[1].OK())
	assert.Empty(t, got[1].Content)

	assert.Equal(t, "b.md", got[2].Name)
	assert.Equal(t, "beta", got[2].Content, "BOM should be stripped")
}

func TestLoadWarnsOnUnreadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.md"), 0o755))

	var buf bytes.Buffer
	cfg := types.AnalyzerConfig{Dir: dir, Sources: []string{"gone.md", "folder.md"}}
	got := Load(cfg, logging.New("warn", &buf))

	require.Len(t, got, 2)
	assert.False(t, got[0].OK())
	assert.False(t, got[1].OK())
	assert.Contains(t, buf.String(), "gone.md")
	assert.Contains(t, buf.String(), "folder.md")
}

func TestLoadAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "abs.md", "content")

	cfg := types.AnalyzerConfig{Dir: "/nonexistent", Sources: []string{filepath.Join(dir, "abs.md")}}
	got := Load(cfg, logging.Discard())

	require.Len(t, got, 1)
	assert.True(t, got[0].OK())
	assert.Equal(t, "abs.md", got[0].Name)
}

func TestLoadEmptyDirDefaultsToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "here.md", "x")
	t.Chdir(dir)

	got := Load(types.AnalyzerConfig{Sources: []string{"here.md"}}, logging.Discard())
	require.Len(t, got, 1)
	assert.True(t, got[0].OK())
	assert.Equal(t, "x", got[0].Content)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
