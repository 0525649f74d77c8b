package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"cattery/internal/config"
	"cattery/internal/domain"
	"cattery/internal/port"
)

// UploadFileInput represents a single file in a batch upload.
type UploadFileInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// UploadResult is the per-file outcome of a batch upload. Thumbnails are not
// generated server-side, so ThumbnailURL equals OriginalURL.
type UploadResult struct {
	Success      bool    `json:"success"`
	OriginalURL  *string `json:"original_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	URL          *string `json:"url"`
	Filename     string  `json:"filename"`
	Error        *string `json:"error"`
}

// UploadService defines image upload.
type UploadService interface {
	// UploadBatch stores every file independently; a failing file never
	// fails the batch.
	UploadBatch(ctx context.Context, uploadType domain.UploadType, files []UploadFileInput) ([]UploadResult, error)
}

type uploadService struct {
	storage port.ImageStorage
	cfg     *config.S3Config
	now     func() time.Time
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(storage port.ImageStorage, cfg *config.S3Config) UploadService {
	return &uploadService{storage: storage, cfg: cfg, now: time.Now}
}

func (s *uploadService) UploadBatch(ctx context.Context, uploadType domain.UploadType, files []UploadFileInput) ([]UploadResult, error) {
	if !domain.ValidUploadTypes[uploadType] {
		return nil, domain.ErrInvalidUploadType
	}

	log.Printf("uploadService.UploadBatch: uploading %d %s files", len(files), uploadType)

	results := make([]UploadResult, 0, len(files))
	for _, f := range files {
		result := UploadResult{Filename: f.Header.Filename}

		url, err := s.uploadOne(ctx, uploadType, f)
		if err != nil {
			log.Printf("uploadService.UploadBatch: failed to upload %s: %v", f.Header.Filename, err)
			msg := err.Error()
			result.Error = &msg
			results = append(results, result)
			continue
		}

		result.Success = true
		result.OriginalURL = &url
		result.ThumbnailURL = &url
		result.URL = &url
		results = append(results, result)
	}
	return results, nil
}

func (s *uploadService) uploadOne(ctx context.Context, uploadType domain.UploadType, f UploadFileInput) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Header.Filename), "."))
	imageType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if f.Header.Size > maxBytes {
		return "", domain.ErrFileTooLarge
	}

	// Sniff the first 512 bytes so a renamed file cannot pass as an image.
	buf := make([]byte, 512)
	n, err := f.File.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading file header: %w", err)
	}
	if _, valid := domain.AllowedContentTypes[http.DetectContentType(buf[:n])]; !valid {
		return "", domain.ErrUnsupportedFileType
	}
	if _, err := f.File.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking file: %w", err)
	}

	now := s.now().UTC()
	key := fmt.Sprintf("%s/%04d/%02d/%s.%s", uploadType, now.Year(), now.Month(), uuid.New(), imageType)

	if _, err := s.storage.Put(ctx, port.PutObjectInput{
		Key:         key,
		Body:        f.File,
		ContentType: domain.AllowedImageTypes[imageType],
		Size:        f.Header.Size,
	}); err != nil {
		log.Printf("uploadService.uploadOne: storage put failed for %s: %v", key, err)
		return "", domain.ErrUploadFailed
	}

	url, err := s.storage.URL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("resolving url: %w", err)
	}
	return url, nil
}
