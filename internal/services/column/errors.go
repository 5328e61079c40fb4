// Package column contains the business logic for column operations
package column

import "errors"

// Validation errors surfaced to the caller as client input problems
var (
	// ErrEmptyTitle indicates a missing or empty column title
	ErrEmptyTitle = errors.New("column title cannot be empty")
)
