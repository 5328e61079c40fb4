// Package board contains the business logic for board operations
package board

import "errors"

// Validation errors surfaced to the caller as client input problems
var (
	// ErrEmptyTitle indicates a missing or empty board title
	ErrEmptyTitle = errors.New("board title cannot be empty")
)
