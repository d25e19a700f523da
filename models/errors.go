package models

import (
	"fmt"
	"strings"
)

// FieldError describes a single violated submission field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in a submission.
// It is user-correctable and never retried.
type ValidationError struct {
	Fields []FieldError
}

// Add appends a field violation.
func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StorageCause distinguishes filesystem failure modes.
type StorageCause string

const (
	StorageCausePermission  StorageCause = "permission"
	StorageCauseCapacity    StorageCause = "capacity"
	StorageCauseMissingPath StorageCause = "missing_path"
	StorageCauseIO          StorageCause = "io"
)

// StorageError wraps a file-store failure with enough detail to
// distinguish permission, capacity and missing-path causes.
type StorageError struct {
	Op    string
	Path  string
	Cause StorageCause
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s (%s): %v", e.Op, e.Path, e.Cause, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a document-store write/read/connect failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ConfigurationError is fatal; the process cannot serve requests.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Key, e.Reason)
}
