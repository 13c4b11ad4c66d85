package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrFetchFailed             = errors.New("image fetch failed")
	ErrModelFailed             = errors.New("model call failed")
	ErrUnknownTask             = errors.New("unknown task kind")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrExportStorageDisabled   = errors.New("export storage is not configured")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// FetchError reports a failed image retrieval. Status is zero for
// network-level failures.
type FetchError struct {
	Ref    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("Image fetch failed with status %d", e.Status)
	}
	return fmt.Sprintf("Image fetch failed: %v", e.Err)
}

// Unwrap lets errors.Is match both ErrFetchFailed and the underlying cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetchFailed}
	}
	return []error{ErrFetchFailed, e.Err}
}

// ModelError reports a failed call to the generative model.
type ModelError struct {
	Provider string
	Status   int
	Err      error
}

func (e *ModelError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s API error (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ModelError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrModelFailed}
	}
	return []error{ErrModelFailed, e.Err}
}
