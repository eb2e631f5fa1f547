package directory

import "errors"

// ErrNotFound signals that the requested record does not exist.
// The boundary maps it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ValidationError signals a missing or malformed request field.
// The boundary maps it to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError signals a delete blocked by dependent records.
// The boundary maps it to HTTP 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }
