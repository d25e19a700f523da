package service

import (
	"testing"

	"noticeboard-backend/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		declared   string
		mediaURL   string
		hasContent bool
		want       models.ContentType
	}{
		{"pdf extension", "pdf", "/uploads/flyer-123-ab.pdf", false, models.ContentTypePDF},
		{"image extension", "image", "/uploads/poster-123-ab.png", false, models.ContentTypeImage},
		{"video extension", "video", "/uploads/tour-123-ab.mp4", false, models.ContentTypeVideo},
		{"uppercase extension", "", "/uploads/POSTER.PNG", false, models.ContentTypeImage},
		{"extension beats declared tag", "video", "/uploads/poster-123-ab.jpeg", false, models.ContentTypeImage},
		{"unknown extension falls back to declared", "video", "/uploads/clip-123-ab.bin", false, models.ContentTypeVideo},
		{"declared tag case-insensitive", "PDF", "", false, models.ContentTypePDF},
		{"no url, content means text", "", "", true, models.ContentTypeText},
		{"nothing matches defaults to text", "banner", "", false, models.ContentTypeText},
		{"unknown extension and unknown tag", "banner", "/uploads/thing.xyz", false, models.ContentTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.declared, tt.mediaURL, tt.hasContent)
			if got != tt.want {
				t.Errorf("Classify(%q, %q, %v) = %s, want %s", tt.declared, tt.mediaURL, tt.hasContent, got, tt.want)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	urls := []string{"/uploads/a.pdf", "/uploads/b.png", "/uploads/c.mp4", ""}
	for _, url := range urls {
		first := Classify("", url, url == "")
		second := Classify(string(first), url, url == "")
		if first != second {
			t.Errorf("reclassifying %q changed tag: %s -> %s", url, first, second)
		}
	}
}
