// Package storage holds the Cloudinary-backed object store used for
// uploaded badge photos and generated QR codes.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStore{client: client, folder: folder}, nil
}

// Upload stores content under the configured folder and returns the
// public HTTPS URL. The path's extension is stripped: Cloudinary derives
// the delivery format itself.
func (s *CloudinaryStore) Upload(ctx context.Context, content io.Reader, p string) (string, error) {
	publicID := strings.TrimSuffix(p, path.Ext(p))

	res, err := s.client.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %s: %w", p, err)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload %s: %s", p, res.Error.Message)
	}
	return res.SecureURL, nil
}
