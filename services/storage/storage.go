package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements ImageStorage on Cloudinary.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage uploads into folder of the given Cloudinary account.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary, folder string) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld, folder: folder}
}

// UploadImage uploads a local image file and returns its permanent identifier.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, localFilePath string) (*UploadedImage, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return nil, fmt.Errorf("CloudinaryStorage: failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("CloudinaryStorage: no public ID returned")
	}
	return &UploadedImage{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// DeleteImage deletes an image given its public ID.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete image: %w", err)
	}
	return nil
}

// ImageURL builds the delivery URL of an uploaded image.
func (s *CloudinaryStorage) ImageURL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to get asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to get URL string: %w", err)
	}
	return url, nil
}
