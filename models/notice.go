package models

import (
	"strings"
	"time"
)

// ContentType classifies a notice's payload kind
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypePDF   ContentType = "pdf"
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
)

// Priority bounds for a notice; 1 is the highest priority.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = 3
)

// Valid reports whether c is one of the four known content types.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeText, ContentTypePDF, ContentTypeImage, ContentTypeVideo:
		return true
	}
	return false
}

// ParseContentType parses a content type tag case-insensitively.
func ParseContentType(s string) (ContentType, bool) {
	c := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c, true
	}
	return "", false
}

// Notice represents a single persisted announcement record.
// Exactly one of Content and MediaURL is non-empty, dictated by ContentType.
type Notice struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Content          string      `json:"content"`
	MediaURL         string      `json:"mediaUrl"`
	Priority         int         `json:"priority"`
	CreatedBy        string      `json:"createdBy"`
	Date             time.Time   `json:"date"`
	OriginalFileName string      `json:"originalFileName,omitempty"`
	ContentType      ContentType `json:"contentType"`
}
