package service

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/storage"
)

// NoticeService runs the ingestion pipeline (validate, store, classify,
// persist) and the degrade-gracefully read path.
type NoticeService struct {
	repo      repository.NoticeRepository
	fileStore storage.FileStore
	limits    UploadLimits
	createdBy string
}

// NoticeServiceOption is a functional option for NoticeService
type NoticeServiceOption func(*NoticeService)

// WithNoticeRepository sets the notice repository
func WithNoticeRepository(repo repository.NoticeRepository) NoticeServiceOption {
	return func(s *NoticeService) {
		s.repo = repo
	}
}

// WithFileStore sets the file store used for non-text submissions
func WithFileStore(store storage.FileStore) NoticeServiceOption {
	return func(s *NoticeService) {
		s.fileStore = store
	}
}

// WithUploadLimits sets the upload size ceilings
func WithUploadLimits(limits UploadLimits) NoticeServiceOption {
	return func(s *NoticeService) {
		s.limits = limits
	}
}

// WithCreatedBy sets the author stamped onto every created notice
func WithCreatedBy(name string) NoticeServiceOption {
	return func(s *NoticeService) {
		s.createdBy = name
	}
}

// NewNoticeService creates a new notice service
func NewNoticeService(opts ...NoticeServiceOption) *NoticeService {
	s := &NoticeService{
		limits:    DefaultUploadLimits(),
		createdBy: "admin",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limits returns the configured upload ceilings.
func (s *NoticeService) Limits() UploadLimits {
	return s.limits
}

// CreateNotice runs a submission through the full pipeline. fileData is
// the upload payload for non-text submissions and may be nil for text.
// When the persist fails after a file was already stored, the stored
// file is deleted best-effort before the error is returned.
func (s *NoticeService) CreateNotice(ctx context.Context, raw RawSubmission, fileData io.Reader) (*models.Notice, error) {
	if s.repo == nil {
		return nil, errors.New("notice repository not set")
	}

	sub, verr := ValidateSubmission(raw, s.limits)
	if verr != nil {
		return nil, verr
	}

	notice := &models.Notice{
		CreatedBy: s.createdBy,
		Date:      time.Now().UTC(),
	}

	switch sub := sub.(type) {
	case TextSubmission:
		notice.Title = sub.Title
		notice.Content = sub.Content
		notice.Priority = sub.Priority
		notice.ContentType = models.ContentTypeText

	case FileSubmission:
		if s.fileStore == nil {
			return nil, errors.New("file store not set")
		}
		stored, err := s.fileStore.Save(ctx, sub.FileName, fileData)
		if err != nil {
			return nil, err
		}
		notice.Title = sub.Title
		notice.Priority = sub.Priority
		notice.MediaURL = stored.URL
		notice.OriginalFileName = sub.FileName
		notice.ContentType = Classify(string(sub.Kind), stored.URL, false)
	}

	id, err := s.repo.Create(ctx, notice)
	if err != nil {
		if notice.MediaURL != "" {
			if delErr := s.fileStore.Delete(ctx, notice.MediaURL); delErr != nil {
				log.Printf("Warning: failed to clean up stored file %s after persist failure: %v", notice.MediaURL, delErr)
			}
		}
		return nil, err
	}
	notice.ID = id

	return notice, nil
}

// ListNotices returns every notice in display order. It never errors:
// when the store is unreachable or holds no records, the fixed fallback
// dataset is served so the display layer always receives renderable
// data, and the degradation is logged.
func (s *NoticeService) ListNotices(ctx context.Context) []models.Notice {
	if s.repo == nil {
		log.Printf("Warning: notice repository not set, serving fallback dataset")
		return repository.FallbackNotices()
	}

	notices, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("Warning: notice store unreachable, serving fallback dataset: %v", err)
		return repository.FallbackNotices()
	}
	if len(notices) == 0 {
		log.Printf("Warning: notice store holds no records, serving fallback dataset")
		return repository.FallbackNotices()
	}

	// Repair tags on records persisted before the current schema.
	for i := range notices {
		if notices[i].ContentType.Valid() {
			continue
		}
		repaired := Classify(string(notices[i].ContentType), notices[i].MediaURL, notices[i].Content != "")
		log.Printf("Warning: notice %s has content type %q, reclassified as %s", notices[i].ID, notices[i].ContentType, repaired)
		notices[i].ContentType = repaired
	}

	return notices
}

// Bulletin returns the ticker strings for the current notices.
func (s *NoticeService) Bulletin(ctx context.Context) []string {
	return DeriveBulletin(s.ListNotices(ctx))
}
