package repository

import (
	"time"

	"noticeboard-backend/models"
)

// fallbackBase pins the sample dataset to a fixed timestamp so its
// display order is deterministic.
var fallbackBase = time.Date(2024, time.September, 1, 9, 0, 0, 0, time.UTC)

// FallbackNotices returns the fixed sample dataset served when the
// document store is unreachable or empty. It spans all four content
// types, is already in display order, and each call returns a fresh
// copy so callers can mutate freely.
func FallbackNotices() []models.Notice {
	return []models.Notice{
		{
			ID:          "fallback-1",
			Title:       "Welcome to the Notice Board",
			Content:     "Live notices are currently unavailable. The notices shown here are samples.",
			Priority:    1,
			CreatedBy:   "system",
			Date:        fallbackBase.Add(3 * time.Hour),
			ContentType: models.ContentTypeText,
		},
		{
			ID:               "fallback-2",
			Title:            "Campus Map",
			MediaURL:         "/uploads/samples/campus-map.pdf",
			Priority:         2,
			CreatedBy:        "system",
			Date:             fallbackBase.Add(2 * time.Hour),
			OriginalFileName: "campus-map.pdf",
			ContentType:      models.ContentTypePDF,
		},
		{
			ID:               "fallback-3",
			Title:            "Orientation Week Poster",
			MediaURL:         "/uploads/samples/orientation-poster.png",
			Priority:         3,
			CreatedBy:        "system",
			Date:             fallbackBase.Add(time.Hour),
			OriginalFileName: "orientation-poster.png",
			ContentType:      models.ContentTypeImage,
		},
		{
			ID:               "fallback-4",
			Title:            "Campus Tour Video",
			MediaURL:         "/uploads/samples/campus-tour.mp4",
			Priority:         4,
			CreatedBy:        "system",
			Date:             fallbackBase,
			OriginalFileName: "campus-tour.mp4",
			ContentType:      models.ContentTypeVideo,
		},
	}
}
