package storage

import "context"

// UploadedImage is what an upload hands back to the caller; PublicID is the
// value menus store as an image reference.
type UploadedImage struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// ImageStorage defines the image operations the menu needs.
type ImageStorage interface {
	UploadImage(ctx context.Context, localFilePath string) (*UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
	ImageURL(publicID string) (string, error)
}
