package trivia

import "errors"

// Failure kinds returned by Service. Callers match them with errors.Is.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidInput        = errors.New("invalid input")
	ErrBadRequest          = errors.New("bad request")
)
