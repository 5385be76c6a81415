package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores each key as "<key>.json" inside a root directory.
type FileKV struct {
	rootDir string
}

// NewFileKV creates the root directory if needed and returns a FileKV.
func NewFileKV(rootDir string) (*FileKV, error) {
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", rootDir, err)
	}
	return &FileKV{rootDir: rootDir}, nil
}

func (f *FileKV) filePath(key string) string {
	return filepath.Join(f.rootDir, key+".json")
}

// Get implements KV.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	contents, err := os.ReadFile(f.filePath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("os.ReadFile(%s) > %w", f.filePath(key), err)
	}
	return contents, true, nil
}

// Set implements KV.
func (f *FileKV) Set(key string, value []byte) error {
	if err := os.WriteFile(f.filePath(key), value, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", f.filePath(key), err)
	}
	return nil
}

// Delete implements KV.
func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove(%s) > %w", f.filePath(key), err)
	}
	return nil
}
