package service

import (
	"log"
	"path"
	"strings"

	"noticeboard-backend/models"
)

// Classify derives the canonical content-type tag for a notice,
// reconciling a declared tag against filename evidence. Precedence is
// deterministic: media-URL extension first, then a valid declared tag,
// then text. It never rejects; a record that matches nothing is logged
// and classified as text, since reconciliation runs on already
// persisted data. Classify is idempotent.
func Classify(declared string, mediaURL string, hasContent bool) models.ContentType {
	if mediaURL != "" {
		if kind, ok := classifyExtension(mediaURL); ok {
			return kind
		}
	}
	if kind, ok := models.ParseContentType(declared); ok {
		return kind
	}
	if !hasContent {
		log.Printf("Warning: notice has no recognizable media type and no content, defaulting to text (declared=%q url=%q)", declared, mediaURL)
	}
	return models.ContentTypeText
}

// classifyExtension maps a media URL's extension to a content type.
func classifyExtension(mediaURL string) (models.ContentType, bool) {
	switch strings.ToLower(path.Ext(mediaURL)) {
	case ".pdf":
		return models.ContentTypePDF, true
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg":
		return models.ContentTypeImage, true
	case ".mp4", ".webm", ".mov", ".ogg", ".avi", ".mkv":
		return models.ContentTypeVideo, true
	}
	return "", false
}
