package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"consogab-me/models"
)

const (
	// DefaultMaxUploadSize caps uploads when the config does not set one
	DefaultMaxUploadSize = 5 * 1024 * 1024

	defaultBucket = "uploads"
)

// StorageService persists uploaded files under a local storage root and
// exposes them as URLs. Uploads are validated as decodable images; an upload
// config can additionally require exact pixel dimensions (carousel banners).
type StorageService struct {
	root    string
	baseURL string
}

// NewStorageService creates a StorageService rooted at the given directory
func NewStorageService(root, baseURL string) (*StorageService, error) {
	if root == "" {
		root = "storage"
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &StorageService{root: root, baseURL: baseURL}, nil
}

// Ensure StorageService implements StorageServiceInterface
var _ StorageServiceInterface = (*StorageService)(nil)

// Upload validates and stores one file, returning its public URL and path.
// The original extension is kept; the stored name is a uuid to avoid clashes.
func (s *StorageService) Upload(ctx context.Context, fileName string, data []byte, cfg models.UploadConfig) (*models.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d > %d bytes)", fileName, len(data), maxSize)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("file %s is not a valid image: %w", fileName, err)
	}

	if cfg.ExactWidth > 0 && cfg.ExactHeight > 0 {
		bounds := img.Bounds()
		if bounds.Dx() != cfg.ExactWidth || bounds.Dy() != cfg.ExactHeight {
			return nil, fmt.Errorf("file %s must be exactly %dx%d pixels, got %dx%d",
				fileName, cfg.ExactWidth, cfg.ExactHeight, bounds.Dx(), bounds.Dy())
		}
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = defaultBucket
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = "." + format
	}

	relPath := filepath.Join(bucket, cfg.Folder, uuid.New().String()+ext)
	fullPath := filepath.Join(s.root, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	urlPath := "/media/" + filepath.ToSlash(relPath)
	log.Printf("✓ StorageService.Upload: stored %s as %s (%d bytes, format=%s)", fileName, relPath, len(data), format)

	return &models.UploadResult{
		ID:   strings.TrimSuffix(filepath.Base(relPath), ext),
		URL:  s.baseURL + urlPath,
		Path: relPath,
	}, nil
}

// Root returns the storage root directory, used to mount the file server
func (s *StorageService) Root() string {
	return s.root
}
