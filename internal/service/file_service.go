package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"blogapp/internal/middleware"
	"blogapp/internal/models"
	"blogapp/internal/observability"

	"github.com/google/uuid"
)

// FallbackImageContentType is served for files whose extension has no known type.
const FallbackImageContentType = "image/jpeg"

// FileService stores uploaded images under a single directory.
type FileService struct {
	dir string
}

func NewFileService(dir string) *FileService {
	return &FileService{dir: dir}
}

// Upload copies r into a new file named by a random UUID plus the extension of
// originalName and returns the generated name.
func (s *FileService) Upload(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(filepath.Base(originalName))

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}

	observability.ImagesUploaded.Inc()
	observability.ImageBytesUploaded.Add(float64(n))
	middleware.Logger.InfoContext(ctx, "image stored", "file", name, "bytes", n)
	return name, nil
}

// Open opens a stored image for reading. Names that do not resolve to a file
// inside the image directory are reported as not found.
func (s *FileService) Open(name string) (*os.File, string, error) {
	f, err := os.OpenInRoot(s.dir, name)
	if err != nil {
		// Permission failures surface as internal errors.
		if errors.Is(err, fs.ErrPermission) {
			return nil, "", err
		}
		// Missing files and names escaping the directory read as not found.
		return nil, "", imageNotFound(name)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, "", err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, "", imageNotFound(name)
	}

	return f, ContentTypeFor(name), nil
}

// ContentTypeFor derives the content type from the file extension.
func ContentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return FallbackImageContentType
}

func imageNotFound(name string) *models.AppError {
	return &models.AppError{
		Code:    models.CodeNotFound,
		Message: fmt.Sprintf("Image %s not found!", name),
	}
}
