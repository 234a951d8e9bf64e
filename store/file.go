package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileConfig holds configuration for the file backend.
type FileConfig struct {
	// Dir is the data directory holding one file per slot key.
	// Default: "shopfront-data"
	Dir string

	// FileMode is the permission mode for created slot files.
	// Default: 0o600
	FileMode os.FileMode
}

// DefaultFileConfig returns sensible defaults for a local store.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Dir:      "shopfront-data",
		FileMode: 0o600,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *FileConfig) validate() {
	if c.Dir == "" {
		c.Dir = "shopfront-data"
	}
	if c.FileMode == 0 {
		c.FileMode = 0o600
	}
}

// FileBackend stores each slot key as a file under a data directory.
// Writes go through a temp file and rename so a slot is never observed
// half-written.
type FileBackend struct {
	config FileConfig
}

// NewFileBackend creates a file backend, creating the data directory if
// needed.
func NewFileBackend(config FileConfig) (*FileBackend, error) {
	config.validate()
	if err := os.MkdirAll(config.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{config: config}, nil
}

// Read returns the stored bytes for key.
func (f *FileBackend) Read(_ context.Context, key string) ([]byte, bool, error) {
	path, err := f.slotPath(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Write replaces the stored bytes for key.
func (f *FileBackend) Write(_ context.Context, key string, data []byte) error {
	path, err := f.slotPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.config.Dir, "."+key+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, f.config.FileMode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (f *FileBackend) Delete(_ context.Context, key string) error {
	path, err := f.slotPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// slotPath maps a slot key to its file path. Keys must be simple names;
// anything that could escape the data directory is rejected.
func (f *FileBackend) slotPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("shopfront: invalid slot key %q", key)
	}
	return filepath.Join(f.config.Dir, key+".json"), nil
}
