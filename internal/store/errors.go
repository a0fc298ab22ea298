package store

import "errors"

var (
	// ErrNotFound reports an update or delete whose target id is absent.
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports a create whose id is already taken.
	ErrConflict = errors.New("record already exists")
	// ErrValidation reports a record rejected before any store mutation.
	ErrValidation = errors.New("invalid record")
)
