package apperr

import "errors"

// ErrSessionClosed is returned by session operations after Close; callers
// discard it silently, it is never surfaced to a user.
var ErrSessionClosed = errors.New("session closed")

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// SourceError marks a genuine fetch failure from one backing source, as
// opposed to a timeout (a flag, not an error) or a cancellation
// (context.Canceled, never surfaced).
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return "source " + e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewSource(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}
