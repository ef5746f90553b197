// Package cloudinary implements the storage.ImageUploader interface against
// the Cloudinary upload API.
package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader pushes images into a single Cloudinary folder and hands back the
// delivery URL that gets stored on the post.
type Uploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// New creates an Uploader from a cloudinary:// connection URL.
func New(connectionURL, folder string) (*Uploader, error) {
	if connectionURL == "" {
		return nil, fmt.Errorf("cloudinary: connection URL cannot be empty")
	}
	client, err := cloudinary.NewFromURL(connectionURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: init client: %w", err)
	}
	if folder == "" {
		folder = "blog"
	}
	return &Uploader{client: client, folder: folder}, nil
}

// Upload stores the file under a random public ID and returns its HTTPS URL.
// The original filename is discarded: uploads must not be addressable by a
// client-chosen name.
func (u *Uploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	publicID := uuid.NewString()
	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary: upload %q: %w", filename, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: upload %q: %s", filename, resp.Error.Message)
	}
	return resp.SecureURL, nil
}
