// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
)

// BoardRepository covers board persistence operations.
type BoardRepository interface {
	CreateBoard(ctx context.Context, title string) (*models.Board, error)
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	DeleteBoard(ctx context.Context, id int) error
}

// ColumnRepository covers column persistence operations.
type ColumnRepository interface {
	CreateColumn(ctx context.Context, title string, position, boardID int) (*models.Column, error)
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	UpdateColumn(ctx context.Context, id int, title *string, position *int) (*models.Column, error)
	DeleteColumn(ctx context.Context, id int) error
}

// CardRepository covers card persistence operations.
type CardRepository interface {
	CreateCard(ctx context.Context, params CreateCardParams) (*models.Card, error)
	GetCardsByColumn(ctx context.Context, columnID int) ([]*models.Card, error)
	GetCardByID(ctx context.Context, id int) (*models.Card, error)
	UpdateCard(ctx context.Context, id int, params UpdateCardParams) (*models.Card, error)
	DeleteCard(ctx context.Context, id int) error
}

// DataStore is the unified interface for all data operations. Consumers can
// depend on the smaller interfaces for clearer dependencies and easier
// test doubles.
type DataStore interface {
	BoardRepository
	ColumnRepository
	CardRepository
}
