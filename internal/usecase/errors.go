package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrMalformedDocument     = errors.New("malformed stats document")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
