package service

import (
	"noticeboard-backend/models"
)

// bulletinLimit caps the ticker at the top five highest-priority notices.
const bulletinLimit = 5

// fallbackBulletin is served when no priority-1 notice exists.
var fallbackBulletin = []string{
	"Welcome to the notice board",
	"Check back regularly for important announcements",
	"Contact the administration office to publish a notice",
}

// DeriveBulletin projects the top-priority notices into short display
// strings. It keeps the order the repository established, filters to
// priority 1 and maps each notice to its title. With no priority-1
// notices it returns the static fallback list.
func DeriveBulletin(notices []models.Notice) []string {
	var titles []string
	for _, n := range notices {
		if n.Priority != models.MinPriority {
			continue
		}
		titles = append(titles, n.Title)
		if len(titles) == bulletinLimit {
			break
		}
	}
	if len(titles) == 0 {
		return append([]string(nil), fallbackBulletin...)
	}
	return titles
}
