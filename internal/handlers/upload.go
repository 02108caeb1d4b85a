// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/services"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

var allowedImageTypes = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

type UploadHandler struct {
	storageService *services.StorageService
	maxSizeBytes   int64
}

func NewUploadHandler(storageService *services.StorageService, maxSizeMB int) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		maxSizeBytes:   int64(maxSizeMB) * 1024 * 1024,
	}
}

// POST /upload (admin)
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided")
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "misc")

	result, err := h.storageService.UploadFile(file, header, services.UploadOptions{
		Folder:       folder,
		MaxSize:      h.maxSizeBytes,
		AllowedTypes: allowedImageTypes,
	})
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, result)
}
