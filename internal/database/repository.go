package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes entity-specific repositories using struct embedding.
type Repository struct {
	*BoardRepo
	*ColumnRepo
	*CardRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		BoardRepo:  &BoardRepo{db: db},
		ColumnRepo: &ColumnRepo{db: db},
		CardRepo:   &CardRepo{db: db},
	}
}

// Wrapper methods for BoardRepo to disambiguate the embedded method sets

func (r *Repository) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	return r.BoardRepo.Create(ctx, title)
}

func (r *Repository) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	return r.BoardRepo.GetAll(ctx)
}

func (r *Repository) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	return r.BoardRepo.GetByID(ctx, id)
}

func (r *Repository) DeleteBoard(ctx context.Context, id int) error {
	return r.BoardRepo.Delete(ctx, id)
}

// Wrapper methods for ColumnRepo

func (r *Repository) CreateColumn(ctx context.Context, title string, position, boardID int) (*models.Column, error) {
	return r.ColumnRepo.Create(ctx, title, position, boardID)
}

func (r *Repository) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	return r.ColumnRepo.GetByBoard(ctx, boardID)
}

func (r *Repository) GetColumnByID(ctx context.Context, id int) (*models.Column, error) {
	return r.ColumnRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateColumn(ctx context.Context, id int, title *string, position *int) (*models.Column, error) {
	return r.ColumnRepo.Update(ctx, id, title, position)
}

func (r *Repository) DeleteColumn(ctx context.Context, id int) error {
	return r.ColumnRepo.Delete(ctx, id)
}

// Wrapper methods for CardRepo

func (r *Repository) CreateCard(ctx context.Context, params CreateCardParams) (*models.Card, error) {
	return r.CardRepo.Create(ctx, params)
}

func (r *Repository) GetCardsByColumn(ctx context.Context, columnID int) ([]*models.Card, error) {
	return r.CardRepo.GetByColumn(ctx, columnID)
}

func (r *Repository) GetCardByID(ctx context.Context, id int) (*models.Card, error) {
	return r.CardRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateCard(ctx context.Context, id int, params UpdateCardParams) (*models.Card, error) {
	return r.CardRepo.Update(ctx, id, params)
}

func (r *Repository) DeleteCard(ctx context.Context, id int) error {
	return r.CardRepo.Delete(ctx, id)
}
