package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"

	"pawcare-admin/internal/config"
	"pawcare-admin/internal/model"
	platformservice "pawcare-admin/internal/platform/service"

	"github.com/google/uuid"
)

// Backend persists opaque blobs by key.
type Backend interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Policy constrains what a caller may upload.
type Policy struct {
	Folder   string
	MaxBytes int64
	MaxFiles int
}

// Upload is a file received from a client, not yet stored.
type Upload struct {
	OriginalName string
	Size         int64
	Open         func() (io.ReadCloser, error)
}

func FromFileHeader(fh *multipart.FileHeader) Upload {
	return Upload{
		OriginalName: fh.Filename,
		Size:         fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func FromBytes(name string, data []byte) Upload {
	return Upload{
		OriginalName: name,
		Size:         int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// Store validates uploads as images and hands them to a Backend under a
// random name.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// NewBackend picks the backend named by upload.driver.
func NewBackend(ctx context.Context, cfg config.UploadConfig) (Backend, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalBackend(cfg.Path, cfg.URLPrefix)
	case "s3":
		return NewS3Backend(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported upload driver %q", cfg.Driver)
	}
}

// Save checks size and sniffed content type, then stores the file. The
// client-supplied name and MIME type are never trusted.
func (s *Store) Save(ctx context.Context, policy Policy, u Upload) (model.Image, error) {
	if policy.MaxBytes > 0 && u.Size > policy.MaxBytes {
		return model.Image{}, platformservice.NewValidationError(
			fmt.Sprintf("File too large. Maximum size is %dMB", policy.MaxBytes>>20))
	}

	rc, err := u.Open()
	if err != nil {
		return model.Image{}, platformservice.WrapInternal("Failed to read uploaded file", err)
	}
	defer rc.Close()

	// buffered whole: uploads are small and S3 wants a seekable body
	limit := policy.MaxBytes
	if limit <= 0 {
		limit = 1 << 30
	}
	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return model.Image{}, platformservice.WrapInternal("Failed to read uploaded file", err)
	}
	if int64(len(data)) > limit {
		return model.Image{}, platformservice.NewValidationError(
			fmt.Sprintf("File too large. Maximum size is %dMB", policy.MaxBytes>>20))
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return model.Image{}, platformservice.NewValidationError("Only image files are allowed")
	}

	filename := uuid.NewString() + ext
	key := path.Join(policy.Folder, filename)
	if err := s.backend.Put(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return model.Image{}, platformservice.WrapInternal("Failed to store uploaded file", err)
	}

	return model.Image{
		Filename:     filename,
		OriginalName: u.OriginalName,
		Path:         key,
		URL:          s.backend.URL(key),
		Size:         int64(len(data)),
		Mimetype:     contentType,
	}, nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.backend.Delete(ctx, key)
}
