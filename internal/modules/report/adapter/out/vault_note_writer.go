package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"roadmap/internal/modules/report/domain"
	reportout "roadmap/internal/modules/report/port/out"
)

type VaultNoteWriter struct {
	dir string
}

func NewVaultNoteWriter(dir string) reportout.NoteWriter {
	return &VaultNoteWriter{dir: dir}
}

func (w *VaultNoteWriter) Write(ctx context.Context, notes []domain.Note) ([]string, error) {
	paths := make([]string, 0, len(notes))
	for _, note := range notes {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Join(w.dir, filepath.FromSlash(note.RelPath))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return paths, fmt.Errorf("create report dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(note.Content), 0o644); err != nil {
			return paths, fmt.Errorf("write report note: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
