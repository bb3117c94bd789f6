package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")

	// Upload pipeline errors.
	ErrUnsupportedMediaType = errors.New("file type not allowed")
	ErrFileTooLarge         = errors.New("file exceeds the size limit")
	ErrUnsafePath           = errors.New("path escapes the uploads directory")
)
