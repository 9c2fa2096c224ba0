package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"atlasrent-backend/internal/config"
	"atlasrent-backend/internal/storage"

	"github.com/google/uuid"
)

var validDocTypes = map[string]bool{
	"id":       true,
	"license":  true,
	"passport": true,
}

type documentService struct {
	store        storage.DocumentStorage
	maxFileSize  int64
	allowedTypes map[string]bool
}

func NewDocumentService(store storage.DocumentStorage, cfg config.StorageConfig) DocumentService {
	allowed := make(map[string]bool, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[strings.ToLower(t)] = true
	}
	maxSize := cfg.MaxFileSizeMB * 1024 * 1024
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	return &documentService{store: store, maxFileSize: maxSize, allowedTypes: allowed}
}

func (s *documentService) Upload(ctx context.Context, userID int32, docType, filename, contentType string, size int64, body io.Reader) (string, error) {
	if !validDocTypes[docType] {
		return "", fmt.Errorf("unknown document type %q", docType)
	}
	if len(s.allowedTypes) > 0 && !s.allowedTypes[strings.ToLower(contentType)] {
		return "", fmt.Errorf("content type %s is not allowed", contentType)
	}
	if size > s.maxFileSize {
		return "", fmt.Errorf("file exceeds the %d MB limit", s.maxFileSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%d/%s_%s%s", userID, docType, uuid.New().String(), ext)

	// Guard against clients lying about Content-Length.
	limited := io.LimitReader(body, s.maxFileSize+1)
	if err := s.store.Save(ctx, key, contentType, limited); err != nil {
		return "", err
	}
	if _, stored, err := s.store.Exists(ctx, key); err == nil && stored > s.maxFileSize {
		_ = s.store.Delete(ctx, key)
		return "", fmt.Errorf("file exceeds the %d MB limit", s.maxFileSize/(1024*1024))
	}

	return s.store.PublicURL(key), nil
}

func (s *documentService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.store.Open(ctx, key)
}
