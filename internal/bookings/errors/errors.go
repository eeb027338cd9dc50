package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	// ErrDuplicateReference signals a generated booking reference
	// collided with an existing one; the caller regenerates.
	ErrDuplicateReference = errors.New("booking reference already exists")

	ErrAlreadyCancelled = errors.New("booking already cancelled")
)
