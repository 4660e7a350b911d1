// Package storage persists uploaded attachment files on local disk.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"inqboard/internal/shared/config"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

// StoredFile describes a file after it landed in the upload directory.
type StoredFile struct {
	FileName   string
	StoredPath string
	SizeBytes  int64
	FileType   string
}

var defaultAllowedExts = []string{"jpg", "jpeg", "png", "gif", "webp", "mp4", "webm", "pdf", "doc", "docx"}

var fileTypeByExt = map[string]string{
	"jpg":  "image",
	"jpeg": "image",
	"png":  "image",
	"gif":  "image",
	"webp": "image",
	"mp4":  "video",
	"webm": "video",
}

const defaultMaxSizeMB = 10

type LocalFileStore struct {
	dir         string
	maxBytes    int64
	allowedExts map[string]bool
	log         logger.Interface
}

func NewLocalFileStore(cfg config.UploadConfig, log logger.Interface) (*LocalFileStore, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	maxMB := cfg.MaxSizeMB
	if maxMB <= 0 {
		maxMB = defaultMaxSizeMB
	}

	exts := cfg.AllowedExts
	if len(exts) == 0 {
		exts = defaultAllowedExts
	}
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	return &LocalFileStore{
		dir:         cfg.Dir,
		maxBytes:    int64(maxMB) * 1024 * 1024,
		allowedExts: allowed,
		log:         log,
	}, nil
}

// Save validates and writes one uploaded file. The stored name is uniquified
// so concurrent uploads of identically named files never collide.
func (s *LocalFileStore) Save(header *multipart.FileHeader) (*StoredFile, error) {
	if header.Size > s.maxBytes {
		return nil, errors.NewValidationError("file size exceeds maximum limit")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !s.allowedExts[ext] {
		return nil, errors.NewValidationError("invalid file type")
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	storedName := fmt.Sprintf("%s_%d.%s", uuid.NewString(), time.Now().Unix(), ext)
	storedPath := filepath.Join(s.dir, storedName)

	dst, err := os.OpenFile(storedPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(storedPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	s.log.Infow("file stored", "name", header.Filename, "path", storedPath, "size", written)
	return &StoredFile{
		FileName:   header.Filename,
		StoredPath: storedPath,
		SizeBytes:  written,
		FileType:   classify(ext),
	}, nil
}

func (s *LocalFileStore) Remove(storedPath string) error {
	// Refuse paths outside the upload directory.
	abs, err := filepath.Abs(storedPath)
	if err != nil {
		return err
	}
	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(abs, dir+string(os.PathSeparator)) {
		return fmt.Errorf("path %s is outside the upload directory", storedPath)
	}

	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func classify(ext string) string {
	if t, ok := fileTypeByExt[ext]; ok {
		return t
	}
	return "document"
}
