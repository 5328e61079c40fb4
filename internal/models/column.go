package models

// Column represents a lane within a board (e.g., "To Do", "In Progress").
// Position is a caller-assigned ordinal used for display; no uniqueness is
// enforced across a board's columns.
type Column struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Position int     `json:"position"`
	BoardID  int     `json:"board_id"`
	Cards    []*Card `json:"cards"`
}
