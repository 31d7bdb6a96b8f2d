package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for image storage operations.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a new CloudinaryStorageService instance.
func NewCloudinaryStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorageService{cld: cld}
}

// UploadImage uploads an image into the specified folder and returns its
// secure URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no secure URL returned")
	}
	return result.SecureURL, nil
}

// DeleteImage deletes an image given its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete image: %w", err)
	}
	return nil
}
