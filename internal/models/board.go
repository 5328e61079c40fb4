package models

import "time"

// Board is the top-level kanban container. It owns an ordered collection of
// columns, which are loaded whenever a board is returned from the store.
type Board struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Columns   []*Column `json:"columns"`
}
