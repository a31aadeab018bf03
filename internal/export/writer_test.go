package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_page_server/internal/logging"
	"landing_page_server/internal/types"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, logging.NewNop())

	files := []types.GeneratedFile{
		{Filename: "landing-page.html", Type: "HTML", Content: "<!DOCTYPE html><html></html>"},
		{Filename: "nested/signals.yaml", Type: "YAML", Content: "scheme: blue\n"},
	}
	paths, err := w.WriteFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	got, err := os.ReadFile(filepath.Join(dir, "landing-page.html"))
	require.NoError(t, err)
	assert.Equal(t, files[0].Content, string(got))

	got, err = os.ReadFile(filepath.Join(dir, "nested", "signals.yaml"))
	require.NoError(t, err)
	assert.Equal(t, files[1].Content, string(got))
}

func TestWriteFilesRejectsEscapingPaths(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, logging.NewNop())

	_, err := w.WriteFiles(context.Background(), []types.GeneratedFile{
		{Filename: "ok.html", Content: "fine"},
		{Filename: "../escape.html", Content: "nope"},
	})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "ok.html"))
	assert.True(t, os.IsNotExist(statErr), "nothing should be written when any name is invalid")
}

func TestWriteFilesHonorsCancellation(t *testing.T) {
	w := NewWriter(t.TempDir(), logging.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := w.WriteFiles(ctx, []types.GeneratedFile{{Filename: "a.html", Content: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}
