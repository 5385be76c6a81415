package bank

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSource reads bank files from a local directory, one "<subject>.json"
// per subject.
type FileSource struct {
	rootDir string
}

// NewFileSource creates a FileSource rooted at the given directory.
func NewFileSource(rootDir string) *FileSource {
	return &FileSource{rootDir: rootDir}
}

// Fetch implements Source.
func (s *FileSource) Fetch(_ context.Context, subjectName string) ([]byte, error) {
	path := filepath.Join(s.rootDir, subjectName+".json")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
