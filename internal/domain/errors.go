package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrEmptyURL indicates no repository URL was provided
	ErrEmptyURL = errors.New("repository URL is required")

	// ErrCloneFailed indicates the version-control client could not copy the repository
	ErrCloneFailed = errors.New("clone failed")

	// ErrWorkspace indicates the temporary workspace could not be created
	ErrWorkspace = errors.New("workspace unavailable")

	// ErrWriteFailed indicates writing output failed
	ErrWriteFailed = errors.New("write failed")

	// ErrOutputExists indicates the output file exists and overwrite was not requested
	ErrOutputExists = errors.New("output file already exists")
)

// User-facing messages
const (
	MsgEmptyURL    = "Please enter a valid GitHub repository URL."
	MsgCloneFailed = "Error cloning repository. Please ensure the URL is correct and that you have the necessary permissions."
)

// CloneError represents a failed clone. The cause is kept for logging only;
// every CloneError is reported to the user the same way.
type CloneError struct {
	URL     string
	Backend string
	Err     error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("%s: clone of %s via %s: %v", ErrCloneFailed, e.URL, e.Backend, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// Is reports ErrCloneFailed for every CloneError
func (e *CloneError) Is(target error) bool {
	return target == ErrCloneFailed
}

// NewCloneError creates a new CloneError
func NewCloneError(url, backend string, err error) *CloneError {
	return &CloneError{
		URL:     url,
		Backend: backend,
		Err:     err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// UserMessage returns the text shown to the user for err.
// Clone failures collapse into a single generic message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyURL):
		return MsgEmptyURL
	case errors.Is(err, ErrCloneFailed):
		return MsgCloneFailed
	default:
		return err.Error()
	}
}
