package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists the document as a single file on disk. Writes go through a
// temp file and rename so readers never observe a torn document; a mutex
// serializes writers sharing the temp path.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed KV at path. The parent directory is created
// if missing. The contract uses one fixed namespace key, so the key argument
// is ignored and the configured file holds the whole document.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &File{path: path}, nil
}

// Load reads the stored document. A missing file means the key was never written.
func (f *File) Load(_ context.Context, _ string) (string, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", f.path, err)
	}
	return string(data), true, nil
}

// Save atomically replaces the stored document.
func (f *File) Save(_ context.Context, _ string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
