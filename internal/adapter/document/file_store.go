package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore writes exported artifacts under a base directory.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Write stores content as name and returns the full path. The file is
// written to a temporary name first so readers never see partial output.
func (s *FileStore) Write(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}

	if err := os.MkdirAll(s.baseDir, os.ModePerm); err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, name)

	tmp, err := os.CreateTemp(s.baseDir, name+".*.tmp")
	if err != nil {
		return "", err
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return fullPath, nil
}
