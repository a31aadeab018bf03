package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"landing_page_server/internal/types"
	"landing_page_server/internal/utils"
)

// Writer saves generated files under a target directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, logger: logger}
}

// WriteFiles writes each file under the writer's directory, creating it and
// any subdirectories as needed, and returns the written paths in order.
// Filenames that would escape the directory are rejected before anything is
// written.
func (w *Writer) WriteFiles(ctx context.Context, files []types.GeneratedFile) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		p, ok := utils.SafeJoin(w.dir, f.Filename)
		if !ok {
			return nil, fmt.Errorf("invalid filename %q", f.Filename)
		}
		paths = append(paths, p)
	}

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return paths[:i], err
		}
		if err := os.MkdirAll(filepath.Dir(paths[i]), 0o755); err != nil {
			return paths[:i], fmt.Errorf("failed to create directory for %s: %w", f.Filename, err)
		}
		if err := os.WriteFile(paths[i], []byte(f.Content), 0o644); err != nil {
			return paths[:i], fmt.Errorf("failed to write file %s: %w", f.Filename, err)
		}
		w.logger.Debug("wrote file", "path", paths[i], "type", f.Type, "bytes", len(f.Content))
	}
	w.logger.Info("export complete", "dir", w.dir, "files", len(files))
	return paths, nil
}
