package card

import (
	"context"
	"time"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	ListCards(ctx context.Context, columnID int) ([]*models.Card, error)
	GetCard(ctx context.Context, id int) (*models.Card, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, id int, req UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, id int) error
}

// CreateCardRequest encapsulates data for creating a card. Description,
// DueDate and Assignee default to null when nil.
type CreateCardRequest struct {
	Title       string
	Position    int
	ColumnID    int
	Description *string
	DueDate     *time.Time
	Assignee    *string
}

// UpdateCardRequest is a partial update. Title, Position and ColumnID apply
// only when non-nil; an explicit null for them is ignored. Description,
// DueDate and Assignee are tri-state so an explicit null clears the field
// while an omitted key leaves it unchanged.
type UpdateCardRequest struct {
	Title       *string
	Position    *int
	ColumnID    *int
	Description models.Optional[string]
	DueDate     models.Optional[time.Time]
	Assignee    models.Optional[string]
}

type service struct {
	repo database.CardRepository
}

// NewService creates a new card service
func NewService(repo database.CardRepository) Service {
	return &service{repo: repo}
}

// ListCards returns all cards of a column. An unknown column id yields an
// empty list, not an error.
func (s *service) ListCards(ctx context.Context, columnID int) ([]*models.Card, error) {
	return s.repo.GetCardsByColumn(ctx, columnID)
}

// GetCard returns a single card.
func (s *service) GetCard(ctx context.Context, id int) (*models.Card, error) {
	return s.repo.GetCardByID(ctx, id)
}

// CreateCard validates the request and creates a card. Referential integrity
// against the column is enforced by the storage layer.
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if req.Title == "" {
		return nil, ErrEmptyTitle
	}
	return s.repo.CreateCard(ctx, database.CreateCardParams{
		Title:       req.Title,
		Position:    req.Position,
		ColumnID:    req.ColumnID,
		Description: req.Description,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
	})
}

// UpdateCard applies a partial update and returns the fresh card.
func (s *service) UpdateCard(ctx context.Context, id int, req UpdateCardRequest) (*models.Card, error) {
	return s.repo.UpdateCard(ctx, id, database.UpdateCardParams{
		Title:       req.Title,
		Position:    req.Position,
		ColumnID:    req.ColumnID,
		Description: req.Description,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
	})
}

// DeleteCard removes a card permanently.
func (s *service) DeleteCard(ctx context.Context, id int) error {
	return s.repo.DeleteCard(ctx, id)
}
