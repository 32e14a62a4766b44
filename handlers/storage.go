package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"menucatalog/services/storage"
	"menucatalog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageSize bounds menu image uploads.
const maxImageSize = 10 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// StorageHandler uploads and removes menu images.
type StorageHandler struct {
	StorageSvc storage.ImageStorage
}

func NewStorageHandler(svc storage.ImageStorage) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadImageHandler handles POST /api/menu/images with a multipart "file".
// The returned publicId is what categories and items store as their image.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type; allowed: jpg, jpeg, png, webp, gif"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read file", err.Error())
		return
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "menu-image-*"+ext)
	if err != nil {
		logger.Error("failed to create temp file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer os.Remove(tmp.Name())
	_, copyErr := io.Copy(tmp, src)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		logger.Error("failed to write temp file", zap.Error(copyErr), zap.NamedError("closeError", closeErr))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	uploaded, err := h.StorageSvc.UploadImage(c.Request.Context(), tmp.Name())
	if err != nil {
		logger.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	logger.Info("menu image uploaded", zap.String("publicId", uploaded.PublicID))
	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully.", "data": uploaded})
}

// DeleteImageHandler handles DELETE /api/menu/images/*publicId.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image id is required"})
		return
	}
	if err := h.StorageSvc.DeleteImage(c.Request.Context(), publicID); err != nil {
		getLogger(c).Error("image delete failed", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully."})
}
