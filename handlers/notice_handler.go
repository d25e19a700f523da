package handlers

import (
	"errors"
	"io"
	"net/http"

	"noticeboard-backend/models"
	"noticeboard-backend/service"

	"github.com/gin-gonic/gin"
)

// NoticeHandler handles HTTP requests for notices
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
	}
}

// CreateNotice handles POST /api/notices. The body is multipart:
// title, noticeType, priority, and either content or file (+ fileName).
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	raw := service.RawSubmission{
		Title:      c.PostForm("title"),
		NoticeType: c.PostForm("noticeType"),
		Priority:   c.PostForm("priority"),
		Content:    c.PostForm("content"),
	}

	var fileData io.Reader
	if fileHeader, err := c.FormFile("file"); err == nil {
		raw.HasFile = true
		raw.FileName = fileHeader.Filename
		if name := c.PostForm("fileName"); name != "" {
			raw.FileName = name
		}
		raw.MimeType = fileHeader.Header.Get("Content-Type")
		raw.FileSize = fileHeader.Size

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
		fileData = file
	}

	notice, err := h.noticeService.CreateNotice(c.Request.Context(), raw, fileData)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    notice,
	})
}

// writeCreateError converts a pipeline error into the typed envelope;
// the caller never sees a raw internal error shape.
func (h *NoticeHandler) writeCreateError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": verr.Error(),
				"fields":  verr.Fields,
			},
		})
		return
	}

	var serr *models.StorageError
	if errors.As(err, &serr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": serr.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "PERSISTENCE_ERROR",
			"message": err.Error(),
		},
	})
}

// ListNotices handles GET /api/notices
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	notices := h.noticeService.ListNotices(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notices,
	})
}

// Bulletin handles GET /api/notices/bulletin
func (h *NoticeHandler) Bulletin(c *gin.Context) {
	bulletin := h.noticeService.Bulletin(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bulletin,
	})
}
