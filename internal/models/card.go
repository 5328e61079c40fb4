package models

import "time"

// Card is a single work item within a column. Description, DueDate and
// Assignee are nullable; a nil pointer marshals to JSON null.
type Card struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Position    int        `json:"position"`
	ColumnID    int        `json:"column_id"`
	DueDate     *time.Time `json:"due_date"`
	Assignee    *string    `json:"assignee"`
	CreatedAt   time.Time  `json:"created_at"`
}
