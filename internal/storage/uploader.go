// Package storage defines the blob-store boundary for uploaded images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// MaxImageSize caps uploads at 5 MB.
const MaxImageSize = 5 * 1024 * 1024

// ErrInvalidImage is returned when an upload fails the type or size checks.
var ErrInvalidImage = errors.New("storage: invalid image")

// ImageUploader pushes an image to an external blob store and returns its
// public URL. Implementations do not persist anything locally.
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImage checks extension, declared content type, and size before an
// upload is attempted. Both extension and MIME must pass, mirroring the
// double check the upload boundary has always performed.
func ValidateImage(filename, contentType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("%w: images only (jpeg, jpg, png, gif, webp)", ErrInvalidImage)
	}
	if contentType != "" && !allowedImageMimes[strings.ToLower(contentType)] {
		return fmt.Errorf("%w: images only (jpeg, jpg, png, gif, webp)", ErrInvalidImage)
	}
	if size > MaxImageSize {
		return fmt.Errorf("%w: file exceeds 5MB limit", ErrInvalidImage)
	}
	return nil
}
