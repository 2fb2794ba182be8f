package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores uploads on the local filesystem. The router serves
// the root directory under baseURL, which keeps development and small
// single-host deployments free of any S3 dependency.
type LocalStorage struct {
	rootDir string
	baseURL string
}

func NewLocalStorage(rootDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		rootDir: rootDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := ObjectKey(folder, filename)

	path := filepath.Join(s.rootDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// RootDir returns the directory the router should serve statically.
func (s *LocalStorage) RootDir() string {
	return s.rootDir
}
