package filekv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Backend persists the task collection payload as a single file on disk.
type Backend struct {
	path string
}

// New creates a file-backed slot at path. The parent directory is
// created on the first Save.
func New(path string) *Backend {
	return &Backend{path: path}
}

// Load reads the file contents. A missing file is an empty slot.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", b.path, err)
	}
	return data, nil
}

// Save writes payload atomically: a temp file in the same directory is
// renamed over the target so readers never observe a partial write.
func (b *Backend) Save(ctx context.Context, payload []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", b.path, err)
	}
	return nil
}
