package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the store-relative prefix every returned media URL starts with.
const URLPrefix = "/uploads/"

// StoredFile describes a durably written upload.
type StoredFile struct {
	URL        string // store-relative, e.g. /uploads/poster-1712345678901-a1b2c3d4.png
	StoredName string
}

// FileStore persists binary payloads under collision-resistant names.
type FileStore interface {
	// Save streams data to durable storage and returns its stable URL.
	Save(ctx context.Context, originalName string, data io.Reader) (StoredFile, error)

	// Delete removes a previously stored file by its URL. A missing
	// file is not an error.
	Delete(ctx context.Context, url string) error
}

// FileStoreType represents the storage backend type
type FileStoreType string

const (
	FileStoreTypeLocal FileStoreType = "local"
	FileStoreTypeS3    FileStoreType = "s3"
)

// FileStoreConfig holds configuration for a file store backend
type FileStoreConfig struct {
	Type         FileStoreType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewFileStore creates a new file store instance based on configuration
func NewFileStore(cfg FileStoreConfig) (FileStore, error) {
	switch cfg.Type {
	case FileStoreTypeLocal:
		return NewLocalStore(cfg.LocalPath)
	case FileStoreTypeS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// UploadDirFromEnv returns the local upload directory root.
func UploadDirFromEnv() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// NewFileStoreFromEnv creates a file store instance from environment variables
func NewFileStoreFromEnv() (FileStore, error) {
	storeType := os.Getenv("STORAGE_TYPE")
	if storeType == "" {
		storeType = "local" // Default to local for development
	}

	cfg := FileStoreConfig{
		Type: FileStoreType(storeType),
	}

	switch FileStoreType(storeType) {
	case FileStoreTypeLocal:
		cfg.LocalPath = UploadDirFromEnv()
		return NewLocalStore(cfg.LocalPath)

	case FileStoreTypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1" // Default region
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}

		return NewS3Store(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storeType)
	}
}

// storedName generates a unique stored filename for an upload: the
// sanitized base name, a millisecond timestamp, a random fragment and
// the original extension. Two uploads of identically named files never
// collide, even within the same millisecond.
func storedName(originalName string) string {
	full := filepath.Base(originalName)
	ext := strings.ToLower(filepath.Ext(full))
	base := sanitizeName(strings.TrimSuffix(full, filepath.Ext(full)))
	if base == "" {
		base = "file"
	}
	if ext != "" {
		ext = "." + sanitizeName(strings.TrimPrefix(ext, "."))
	}
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// sanitizeName replaces every rune outside [A-Za-z0-9.-] with an underscore.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// nameFromURL recovers the stored name from a store-relative URL.
func nameFromURL(url string) string {
	return strings.TrimPrefix(url, URLPrefix)
}
