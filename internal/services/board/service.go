package board

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id int) (*models.Board, error)

	// Write operations
	CreateBoard(ctx context.Context, title string) (*models.Board, error)
	DeleteBoard(ctx context.Context, id int) error
}

type service struct {
	repo database.BoardRepository
}

// NewService creates a new board service
func NewService(repo database.BoardRepository) Service {
	return &service{repo: repo}
}

// ListBoards returns every board with columns and cards nested.
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	return s.repo.GetAllBoards(ctx)
}

// GetBoard returns a board with columns and cards nested, or
// models.ErrBoardNotFound.
func (s *service) GetBoard(ctx context.Context, id int) (*models.Board, error) {
	return s.repo.GetBoardByID(ctx, id)
}

// CreateBoard validates the title and creates a board with an empty columns
// collection.
func (s *service) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return s.repo.CreateBoard(ctx, title)
}

// DeleteBoard removes a board and, through the storage cascade, all of its
// columns and cards.
func (s *service) DeleteBoard(ctx context.Context, id int) error {
	return s.repo.DeleteBoard(ctx, id)
}
