package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalDocumentStorage keeps documents on the local filesystem and serves
// them through the API's download endpoint. It stands in for a hosted object
// store in single-node deployments.
type LocalDocumentStorage struct {
	baseURL      string
	documentsDir string
}

func NewLocalDocumentStorage(baseURL, uploadDir string) (*LocalDocumentStorage, error) {
	documentsDir := filepath.Join(uploadDir, "documents")
	if err := os.MkdirAll(documentsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create documents directory: %w", err)
	}
	return &LocalDocumentStorage{
		baseURL:      strings.TrimRight(baseURL, "/"),
		documentsDir: documentsDir,
	}, nil
}

func (s *LocalDocumentStorage) Save(ctx context.Context, key, contentType string, body io.Reader) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *LocalDocumentStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (s *LocalDocumentStorage) Exists(ctx context.Context, key string) (bool, int64, error) {
	path, err := s.resolve(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalDocumentStorage) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalDocumentStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/api/v1/documents/download?key=%s", s.baseURL, url.QueryEscape(key))
}

// resolve maps a key to a path under documentsDir, rejecting traversal.
func (s *LocalDocumentStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.documentsDir, cleaned), nil
}
