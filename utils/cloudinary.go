package utils

import (
	"fmt"

	"menucatalog/config"
	"menucatalog/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes a Cloudinary-backed ImageStorage from AppConfig.
func Cloudinary() (storage.ImageStorage, error) {
	if !config.CloudinaryConfigured() {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewCloudinaryStorage(cld, config.AppConfig.CloudinaryFolder), nil
}
