package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for user-correctable missing input.
var (
	ErrNoImage       = errors.New("no image file provided")
	ErrNoIngredients = errors.New("no ingredients provided")
)

// UpstreamError is a non-200 reply from the completion service. The status
// code and raw body are carried through to the caller unmodified; the request
// is not retried.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion service returned status %d: %s", e.StatusCode, e.Body)
}

// FormatError means the model's reply failed the structural parse. The
// wrapped diagnostic is for logs only; callers surface a generic message.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("response format error: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Err: fmt.Errorf(format, args...)}
}
