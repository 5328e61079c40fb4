package column

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all column-related business operations
type Service interface {
	// Read operations
	ListColumns(ctx context.Context, boardID int) ([]*models.Column, error)
	GetColumn(ctx context.Context, id int) (*models.Column, error)

	// Write operations
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error)
	UpdateColumn(ctx context.Context, id int, req UpdateColumnRequest) (*models.Column, error)
	DeleteColumn(ctx context.Context, id int) error
}

// CreateColumnRequest encapsulates data for creating a column
type CreateColumnRequest struct {
	Title    string
	Position int
	BoardID  int
}

// UpdateColumnRequest is a partial update: nil fields are left unchanged.
// BoardID is deliberately absent; a column cannot move between boards.
type UpdateColumnRequest struct {
	Title    *string
	Position *int
}

type service struct {
	repo database.ColumnRepository
}

// NewService creates a new column service
func NewService(repo database.ColumnRepository) Service {
	return &service{repo: repo}
}

// ListColumns returns all columns of a board with their cards nested. An
// unknown board id yields an empty list, not an error.
func (s *service) ListColumns(ctx context.Context, boardID int) ([]*models.Column, error) {
	return s.repo.GetColumnsByBoard(ctx, boardID)
}

// GetColumn returns a single column with its cards nested.
func (s *service) GetColumn(ctx context.Context, id int) (*models.Column, error) {
	return s.repo.GetColumnByID(ctx, id)
}

// CreateColumn validates the request and creates a column. Referential
// integrity against the board is enforced by the storage layer.
func (s *service) CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error) {
	if req.Title == "" {
		return nil, ErrEmptyTitle
	}
	return s.repo.CreateColumn(ctx, req.Title, req.Position, req.BoardID)
}

// UpdateColumn applies a partial update and returns the fresh column.
func (s *service) UpdateColumn(ctx context.Context, id int, req UpdateColumnRequest) (*models.Column, error) {
	return s.repo.UpdateColumn(ctx, id, req.Title, req.Position)
}

// DeleteColumn removes a column and, through the storage cascade, its cards.
func (s *service) DeleteColumn(ctx context.Context, id int) error {
	return s.repo.DeleteColumn(ctx, id)
}
