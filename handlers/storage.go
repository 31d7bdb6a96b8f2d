package handlers

import (
	"net/http"

	"github.com/Binodkurmi/Birthday-reminderBackend/services/storage"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadFolder = "birthday-reminder"

// maxUploadSize caps image uploads at 5 MiB.
const maxUploadSize = 5 << 20

// StorageHandler serves image upload endpoints.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(storageSvc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: storageSvc}
}

// UploadImageHandler handles POST /api/upload. It expects a multipart form
// with an "image" field and responds with the stored image URL.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds maximum size of 5MB"})
		return
	}

	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadImage(c.Request.Context(), file, uploadFolder)
	if err != nil {
		logger.Error("Image upload failed", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
