package utils

import (
	"fmt"

	"github.com/Binodkurmi/Birthday-reminderBackend/config"
	"github.com/Binodkurmi/Birthday-reminderBackend/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes and returns a Cloudinary-based StorageService from
// the configured CLOUDINARY_URL.
func Cloudinary() (storage.StorageService, error) {
	url := config.AppConfig.CloudinaryURL
	if url == "" {
		return nil, fmt.Errorf("utils.Cloudinary: CLOUDINARY_URL is not set")
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewCloudinaryStorageService(cld), nil
}
