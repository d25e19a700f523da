package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"noticeboard-backend/models"
)

// RawSubmission holds the ingestion fields exactly as the HTTP boundary
// received them, before any validation.
type RawSubmission struct {
	Title      string
	NoticeType string
	Priority   string
	Content    string
	HasFile    bool
	FileName   string
	MimeType   string
	FileSize   int64
}

// Submission is the normalized, type-safe form of a valid RawSubmission.
type Submission interface {
	isSubmission()
}

// TextSubmission is a notice carried entirely in its content field.
type TextSubmission struct {
	Title    string
	Content  string
	Priority int
}

// FileSubmission is a notice backed by an uploaded file.
type FileSubmission struct {
	Title    string
	Kind     models.ContentType // pdf, image or video
	Priority int
	FileName string
	MimeType string
	Size     int64
}

func (TextSubmission) isSubmission() {}
func (FileSubmission) isSubmission() {}

// UploadLimits holds the configured upload size ceilings in bytes.
type UploadLimits struct {
	MaxFileSize      int64
	MaxVideoFileSize int64
}

// DefaultUploadLimits returns the standard ceilings: 10MB for general
// uploads and 45MB for video.
func DefaultUploadLimits() UploadLimits {
	return UploadLimits{
		MaxFileSize:      10 * 1024 * 1024,
		MaxVideoFileSize: 45 * 1024 * 1024,
	}
}

// UploadLimitsFromEnv reads the ceilings from MAX_UPLOAD_SIZE and
// MAX_VIDEO_UPLOAD_SIZE, keeping the defaults for anything unset or
// unparseable.
func UploadLimitsFromEnv() UploadLimits {
	limits := DefaultUploadLimits()
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limits.MaxFileSize = n
		}
	}
	if v := os.Getenv("MAX_VIDEO_UPLOAD_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limits.MaxVideoFileSize = n
		}
	}
	return limits
}

// allowedMimeTypes lists the accepted declared MIME types per file-backed
// content type.
var allowedMimeTypes = map[models.ContentType]map[string]bool{
	models.ContentTypePDF: {
		"application/pdf": true,
	},
	models.ContentTypeImage: {
		"image/jpeg":    true,
		"image/png":     true,
		"image/webp":    true,
		"image/gif":     true,
		"image/svg+xml": true,
	},
	models.ContentTypeVideo: {
		"video/mp4":        true,
		"video/webm":       true,
		"video/ogg":        true,
		"video/quicktime":  true,
		"video/x-msvideo":  true,
		"video/x-matroska": true,
	},
}

// MaxSizeFor returns the ceiling that applies to a content type.
func (l UploadLimits) MaxSizeFor(kind models.ContentType) int64 {
	if kind == models.ContentTypeVideo {
		return l.MaxVideoFileSize
	}
	return l.MaxFileSize
}

// ValidateSubmission checks a raw submission against the per-type rules
// and returns either its normalized form or one error per violated
// field. It is pure: no side effects, safe to retry.
func ValidateSubmission(raw RawSubmission, limits UploadLimits) (Submission, *models.ValidationError) {
	verr := &models.ValidationError{}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		verr.Add("title", "REQUIRED", "Title is required")
	}

	// No default for the notice type: absence is a failure.
	var kind models.ContentType
	kindKnown := false
	if strings.TrimSpace(raw.NoticeType) == "" {
		verr.Add("noticeType", "REQUIRED", "Notice type is required")
	} else if c, ok := models.ParseContentType(raw.NoticeType); ok {
		kind = c
		kindKnown = true
	} else {
		verr.Add("noticeType", "INVALID",
			fmt.Sprintf("Notice type must be one of text, pdf, image, video; got %q", raw.NoticeType))
	}

	// Absent priority defaults; a present-but-invalid one is rejected.
	priority := models.DefaultPriority
	if p := strings.TrimSpace(raw.Priority); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			verr.Add("priority", "INVALID", fmt.Sprintf("Priority must be a number; got %q", raw.Priority))
		} else if n < models.MinPriority || n > models.MaxPriority {
			verr.Add("priority", "OUT_OF_RANGE",
				fmt.Sprintf("Priority must be between %d and %d", models.MinPriority, models.MaxPriority))
		} else {
			priority = n
		}
	}

	if kindKnown {
		if kind == models.ContentTypeText {
			if strings.TrimSpace(raw.Content) == "" {
				verr.Add("content", "REQUIRED", "Content is required for text notices")
			}
		} else {
			validateFile(raw, kind, limits, verr)
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	if kind == models.ContentTypeText {
		return TextSubmission{
			Title:    title,
			Content:  strings.TrimSpace(raw.Content),
			Priority: priority,
		}, nil
	}
	return FileSubmission{
		Title:    title,
		Kind:     kind,
		Priority: priority,
		FileName: raw.FileName,
		MimeType: raw.MimeType,
		Size:     raw.FileSize,
	}, nil
}

func validateFile(raw RawSubmission, kind models.ContentType, limits UploadLimits, verr *models.ValidationError) {
	if !raw.HasFile {
		verr.Add("file", "REQUIRED", fmt.Sprintf("A file upload is required for %s notices", kind))
		return
	}
	if !allowedMimeTypes[kind][raw.MimeType] {
		verr.Add("file", "INVALID_TYPE",
			fmt.Sprintf("MIME type %q is not allowed for %s notices", raw.MimeType, kind))
	}
	if max := limits.MaxSizeFor(kind); raw.FileSize > max {
		verr.Add("file", "TOO_LARGE",
			fmt.Sprintf("File size %d exceeds maximum of %d bytes", raw.FileSize, max))
	}
}
