package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"fitbook/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service stores uploaded documents and images.
type Service interface {
	// Upload stores data under the given folder and returns its public URL.
	Upload(ctx context.Context, data []byte, folder, filename string) (string, error)
	Delete(ctx context.Context, url string) error
}

// CloudinaryStorage implements Service against Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds a storage client from the app config.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cfg := config.AppConfig
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("initializing cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, data []byte, folder, filename string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   folder,
		PublicID: strings.TrimSuffix(filename, path.Ext(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", filename, err)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, url string) error {
	publicID := publicIDFromURL(url)
	if publicID == "" {
		return fmt.Errorf("cannot derive public id from %s", url)
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", publicID, err)
	}
	return nil
}

// publicIDFromURL strips the delivery prefix and extension from a Cloudinary
// URL, leaving the folder-qualified public id.
func publicIDFromURL(url string) string {
	parts := strings.Split(url, "/upload/")
	if len(parts) != 2 {
		return ""
	}
	p := parts[1]
	// Drop the version segment (v1234567890/).
	if i := strings.Index(p, "/"); i > 0 && strings.HasPrefix(p, "v") {
		p = p[i+1:]
	}
	return strings.TrimSuffix(p, path.Ext(p))
}
