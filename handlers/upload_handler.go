package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"noticeboard-backend/service"
	"noticeboard-backend/storage"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles the standalone file upload endpoint used for
// non-text notices.
type UploadHandler struct {
	fileStore storage.FileStore
	limits    service.UploadLimits
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(fileStore storage.FileStore, limits service.UploadLimits) *UploadHandler {
	return &UploadHandler{
		fileStore: fileStore,
		limits:    limits,
	}
}

// UploadFile handles POST /api/files/upload
func (h *UploadHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}

	// Video gets its own, larger ceiling.
	maxSize := h.limits.MaxFileSize
	if strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "video/") {
		maxSize = h.limits.MaxVideoFileSize
	}
	if fileHeader.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": fmt.Sprintf("File size exceeds maximum of %d bytes", maxSize),
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_OPEN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	stored, err := h.fileStore.Save(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": fmt.Sprintf("Failed to store file: %v", err),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"url":              stored.URL,
			"originalFilename": fileHeader.Filename,
		},
	})
}
