package repository

import (
	"context"
	"fmt"
	"os"
	"sort"

	"noticeboard-backend/models"
)

// NoticeRepository persists notice records and serves them back in
// display order.
type NoticeRepository interface {
	// Create persists a notice and returns its store-assigned id.
	Create(ctx context.Context, notice *models.Notice) (string, error)

	// ListAll returns every notice sorted by priority ascending, then
	// date descending; ties keep storage order.
	ListAll(ctx context.Context) ([]models.Notice, error)

	// Close releases the underlying store connections.
	Close(ctx context.Context) error
}

// StoreType represents the document-store backend type
type StoreType string

const (
	StoreTypeMongo    StoreType = "mongo"
	StoreTypePostgres StoreType = "postgres"
)

// NewRepositoryFromEnv creates a notice repository from environment
// variables. The connection string for the selected backend is
// required; a missing one is a configuration error, not something to
// default past.
func NewRepositoryFromEnv(ctx context.Context) (NoticeRepository, error) {
	storeType := os.Getenv("NOTICE_STORE")
	if storeType == "" {
		storeType = "mongo"
	}

	switch StoreType(storeType) {
	case StoreTypeMongo:
		uri := os.Getenv("MONGODB_URI")
		if uri == "" {
			return nil, &models.ConfigurationError{
				Key:    "MONGODB_URI",
				Reason: "required when NOTICE_STORE=mongo",
			}
		}
		database := os.Getenv("MONGODB_DATABASE")
		if database == "" {
			database = "noticeboard"
		}
		collection := os.Getenv("MONGODB_COLLECTION")
		if collection == "" {
			collection = "notices"
		}
		return NewMongoNoticeRepository(ctx, uri, database, collection)

	case StoreTypePostgres:
		connString := os.Getenv("DATABASE_URL")
		if connString == "" {
			return nil, &models.ConfigurationError{
				Key:    "DATABASE_URL",
				Reason: "required when NOTICE_STORE=postgres",
			}
		}
		return NewPostgresNoticeRepository(ctx, connString)

	default:
		return nil, &models.ConfigurationError{
			Key:    "NOTICE_STORE",
			Reason: fmt.Sprintf("unknown store type: %s", storeType),
		}
	}
}

// sortNotices orders notices for display: priority ascending (1 first),
// then date descending (newest first). The sort is stable, so equal
// pairs keep storage order regardless of backend tie behavior.
func sortNotices(notices []models.Notice) {
	sort.SliceStable(notices, func(i, j int) bool {
		if notices[i].Priority != notices[j].Priority {
			return notices[i].Priority < notices[j].Priority
		}
		return notices[i].Date.After(notices[j].Date)
	})
}
