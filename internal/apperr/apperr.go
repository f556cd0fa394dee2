// Package apperr defines the application's sentinel errors and HTTP
// status mapping: a small set of sentinels, an AppError wrapper carrying
// a status code, and a function mapping any error to an HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrFetchFailed covers network, timeout, and non-2xx-after-redirects
	// failures; the crawler logs and skips the page.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrParseFailed covers HTML malformed enough that the extractor
	// raises; the page is skipped.
	ErrParseFailed = errors.New("parse failed")
	// ErrStoreIO covers record-store read/write failures, fatal to the
	// current operation with no partial commit.
	ErrStoreIO = errors.New("store I/O failure")
	// ErrConfigFailed covers an unreadable stop-word file; indexing
	// proceeds with an empty stop-word set.
	ErrConfigFailed = errors.New("configuration failure")
	// ErrQueryShape is never raised to callers by the current parser
	// (unbalanced quotes close at end-of-string) but is kept for
	// completeness and for future strict-mode validators.
	ErrQueryShape = errors.New("invalid query shape")
)

// AppError pairs a sentinel with a human-readable message and the HTTP
// status it should map to.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New wraps sentinel with a status code and message.
func New(sentinel error, statusCode int, message string) *AppError {
	return &AppError{Err: sentinel, Message: message, StatusCode: statusCode}
}

// Newf is New with a formatted message.
func Newf(sentinel error, statusCode int, format string, args ...any) *AppError {
	return &AppError{Err: sentinel, Message: fmt.Sprintf(format, args...), StatusCode: statusCode}
}

// HTTPStatusCode maps err to the HTTP status the query surface should
// respond with.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, ErrQueryShape):
		return http.StatusBadRequest
	case errors.Is(err, ErrFetchFailed), errors.Is(err, ErrParseFailed):
		return http.StatusBadGateway
	case errors.Is(err, ErrConfigFailed):
		return http.StatusInternalServerError
	case errors.Is(err, ErrStoreIO):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
