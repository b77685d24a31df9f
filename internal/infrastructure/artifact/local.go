package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ui-verifier/internal/application/port/output"
)

var _ output.ArtifactStore = (*LocalStore)(nil)

// LocalStore writes artifacts to the local disk, overwriting existing files.
type LocalStore struct{}

func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// Persist writes the contents of data to path, creating parent directories.
func (s *LocalStore) Persist(ctx context.Context, path string, data io.Reader) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	cp := filepath.Clean(path)

	dir := filepath.Dir(cp)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	f, err := os.OpenFile(cp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create file %s: %w", cp, err)
	}
	defer func() {
		// ошибка Close не перекрывает ошибку записи
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close file %s: %w", cp, closeErr)
		}
	}()

	if _, err = io.Copy(f, data); err != nil {
		return fmt.Errorf("write file %s: %w", cp, err)
	}
	return nil
}
