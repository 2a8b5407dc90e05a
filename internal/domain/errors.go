package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found, locally or remotely
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// ForbiddenError indicates the remote provider or the domain
	// allow-list rejected the caller
	ForbiddenError struct {
		Message string
	}

	// RemoteUnavailableError indicates a remote provider call failed or
	// timed out before producing a result
	RemoteUnavailableError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string          { return e.Message }
func (e *ValidationError) Error() string        { return e.Message }
func (e *UnauthorizedError) Error() string      { return e.Message }
func (e *ForbiddenError) Error() string         { return e.Message }
func (e *RemoteUnavailableError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int          { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int        { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int      { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int         { return http.StatusForbidden }
func (e *RemoteUnavailableError) StatusCode() int { return http.StatusBadGateway }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrRemoteUnavailable = errors.New("remote provider unavailable")
	ErrMirrorWrite       = errors.New("mirror write failed")
)

// Is allows errors.Is() matching against the sentinels
func (e *NotFoundError) Is(target error) bool          { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool        { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool      { return target == ErrUnauthorized }
func (e *ForbiddenError) Is(target error) bool         { return target == ErrForbidden }
func (e *RemoteUnavailableError) Is(target error) bool { return target == ErrRemoteUnavailable }

// MirrorWriteError marks the divergence case: the remote side-effect
// succeeded but the mirror write did not. Callers must surface this to
// the user instead of claiming overall failure, because the remote
// object already exists and must not vanish from the user's view.
type MirrorWriteError struct {
	Message string
	Cause   error
}

func (e *MirrorWriteError) Error() string { return e.Message }

func (e *MirrorWriteError) Unwrap() error { return e.Cause }

// Is allows errors.Is() to match against ErrMirrorWrite
func (e *MirrorWriteError) Is(target error) bool { return target == ErrMirrorWrite }

// ConflictError represents a resource conflict with details about the
// existing resource
type ConflictError struct {
	Message      string
	ResourceType string
	ResourceID   string
}

func (e *ConflictError) Error() string { return e.Message }

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int { return http.StatusConflict }

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
