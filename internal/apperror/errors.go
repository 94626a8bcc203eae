package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Errors built by this package match exactly one of them
// through errors.Is, which is how the HTTP layer picks a status code.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalid       = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NotFound reports a referenced entity that does not exist.
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// AlreadyExists reports a uniqueness violation.
func AlreadyExists(msg string) error {
	return &kindError{kind: ErrAlreadyExists, msg: msg}
}

// Invalid reports a request that failed validation.
func Invalid(format string, args ...interface{}) error {
	return &kindError{kind: ErrInvalid, msg: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) error {
	return &kindError{kind: ErrUnauthorized, msg: msg}
}
