package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"syscall"

	"noticeboard-backend/models"
)

// LocalStore implements FileStore on the local filesystem
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a new local file store rooted at basePath. The
// directory is created if missing and probed for writability; a failed
// probe is a configuration error, not a per-request failure.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, &models.ConfigurationError{
			Key:    "UPLOAD_DIR",
			Reason: fmt.Sprintf("cannot create upload directory %s: %v", basePath, err),
		}
	}

	probe := filepath.Join(basePath, ".writecheck")
	f, err := os.Create(probe)
	if err != nil {
		return nil, &models.ConfigurationError{
			Key:    "UPLOAD_DIR",
			Reason: fmt.Sprintf("upload directory %s is not writable: %v", basePath, err),
		}
	}
	f.Close()
	os.Remove(probe)

	return &LocalStore{basePath: basePath}, nil
}

// Save streams data to a uniquely named file under the store root. On
// any failure mid-write the partial file is removed before the error is
// surfaced, and a successful write is re-checked for presence and size
// before being reported.
func (s *LocalStore) Save(ctx context.Context, originalName string, data io.Reader) (StoredFile, error) {
	name := storedName(originalName)
	fullPath := filepath.Join(s.basePath, name)

	file, err := os.Create(fullPath)
	if err != nil {
		return StoredFile{}, storageError("create", fullPath, err)
	}

	written, err := io.Copy(file, data)
	if err != nil {
		file.Close()
		s.removePartial(fullPath)
		return StoredFile{}, storageError("write", fullPath, err)
	}
	if err := file.Close(); err != nil {
		s.removePartial(fullPath)
		return StoredFile{}, storageError("close", fullPath, err)
	}

	// Guard against silent truncation.
	info, err := os.Stat(fullPath)
	if err != nil {
		s.removePartial(fullPath)
		return StoredFile{}, storageError("verify", fullPath, err)
	}
	if !info.Mode().IsRegular() || info.Size() != written {
		s.removePartial(fullPath)
		return StoredFile{}, storageError("verify", fullPath,
			fmt.Errorf("wrote %d bytes but found %d", written, info.Size()))
	}
	check, err := os.Open(fullPath)
	if err != nil {
		s.removePartial(fullPath)
		return StoredFile{}, storageError("verify", fullPath, err)
	}
	check.Close()

	return StoredFile{URL: URLPrefix + name, StoredName: name}, nil
}

// Delete removes a stored file by its URL
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	fullPath := filepath.Join(s.basePath, nameFromURL(url))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return storageError("delete", fullPath, err)
	}

	return nil
}

// removePartial is best-effort cleanup; a failure here must not mask
// the write error that triggered it.
func (s *LocalStore) removePartial(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to remove partial file %s: %v", path, err)
	}
}

// storageError classifies an I/O failure into the storage error taxonomy.
func storageError(op, path string, err error) *models.StorageError {
	cause := models.StorageCauseIO
	switch {
	case os.IsPermission(err):
		cause = models.StorageCausePermission
	case errors.Is(err, syscall.ENOSPC):
		cause = models.StorageCauseCapacity
	case os.IsNotExist(err):
		cause = models.StorageCauseMissingPath
	}
	return &models.StorageError{Op: op, Path: path, Cause: cause, Err: err}
}
