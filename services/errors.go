package services

import "errors"

var (
	// ErrNotFound means a referenced artist, user or event does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means the caller supplied missing or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
)
