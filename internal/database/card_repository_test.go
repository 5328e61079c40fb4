package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// newBoardAndColumn creates the parent entities most card tests need
func newBoardAndColumn(t *testing.T, repo *Repository) (*models.Board, *models.Column) {
	t.Helper()
	ctx := context.Background()

	board, err := repo.CreateBoard(ctx, "Board")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	col, err := repo.CreateColumn(ctx, "To Do", 0, board.ID)
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	return board, col
}

func TestCardCreate_Minimal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	_, col := newBoardAndColumn(t, repo)

	card, err := repo.CreateCard(ctx, CreateCardParams{Title: "Task 1", Position: 0, ColumnID: col.ID})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	if card.ID <= 0 {
		t.Errorf("Expected positive id, got %d", card.ID)
	}
	if card.Title != "Task 1" || card.Position != 0 || card.ColumnID != col.ID {
		t.Errorf("Unexpected card %+v", card)
	}
	if card.Description != nil || card.DueDate != nil || card.Assignee != nil {
		t.Errorf("Expected optional fields to default to null, got %+v", card)
	}
	if card.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestCardCreate_AllFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	_, col := newBoardAndColumn(t, repo)

	desc := "details"
	due := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	who := "noe"
	card, err := repo.CreateCard(ctx, CreateCardParams{
		Title:       "Task",
		Position:    2,
		ColumnID:    col.ID,
		Description: &desc,
		DueDate:     &due,
		Assignee:    &who,
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	fetched, err := repo.GetCardByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("Failed to fetch card: %v", err)
	}
	if fetched.Description == nil || *fetched.Description != "details" {
		t.Errorf("Expected description 'details', got %v", fetched.Description)
	}
	if fetched.DueDate == nil || !fetched.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, fetched.DueDate)
	}
	if fetched.Assignee == nil || *fetched.Assignee != "noe" {
		t.Errorf("Expected assignee 'noe', got %v", fetched.Assignee)
	}
}

func TestCardCreate_NonexistentColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.CreateCard(context.Background(), CreateCardParams{Title: "Orphan", Position: 0, ColumnID: 999})
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("Expected ErrIntegrity, got %v", err)
	}
}

func TestCardUpdate_TitleOnlyLeavesRestUnchanged(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	_, col := newBoardAndColumn(t, repo)

	desc := "keep me"
	card, err := repo.CreateCard(ctx, CreateCardParams{
		Title: "Old", Position: 5, ColumnID: col.ID, Description: &desc,
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	newTitle := "New"
	updated, err := repo.UpdateCard(ctx, card.ID, UpdateCardParams{Title: &newTitle})
	if err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}

	if updated.Title != "New" {
		t.Errorf("Expected title 'New', got %q", updated.Title)
	}
	if updated.Position != 5 {
		t.Errorf("Expected position unchanged at 5, got %d", updated.Position)
	}
	if updated.ColumnID != col.ID {
		t.Errorf("Expected column unchanged at %d, got %d", col.ID, updated.ColumnID)
	}
	if updated.Description == nil || *updated.Description != "keep me" {
		t.Errorf("Expected description unchanged, got %v", updated.Description)
	}
}

func TestCardUpdate_NullClearsOmittedKeeps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	_, col := newBoardAndColumn(t, repo)

	desc := "to be cleared"
	who := "keeper"
	card, err := repo.CreateCard(ctx, CreateCardParams{
		Title: "Task", Position: 0, ColumnID: col.ID, Description: &desc, Assignee: &who,
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	// Explicit null clears description; omitted assignee stays
	updated, err := repo.UpdateCard(ctx, card.ID, UpdateCardParams{
		Description: models.Null[string](),
	})
	if err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}
	if updated.Description != nil {
		t.Errorf("Expected description cleared to null, got %v", *updated.Description)
	}
	if updated.Assignee == nil || *updated.Assignee != "keeper" {
		t.Errorf("Expected assignee unchanged, got %v", updated.Assignee)
	}

	// Explicit value assigns
	updated, err = repo.UpdateCard(ctx, card.ID, UpdateCardParams{
		Description: models.Some("fresh"),
		DueDate:     models.Some(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}
	if updated.Description == nil || *updated.Description != "fresh" {
		t.Errorf("Expected description 'fresh', got %v", updated.Description)
	}
	if updated.DueDate == nil {
		t.Error("Expected due date set")
	}

	// Null clears the due date again
	updated, err = repo.UpdateCard(ctx, card.ID, UpdateCardParams{
		DueDate: models.Null[time.Time](),
	})
	if err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}
	if updated.DueDate != nil {
		t.Errorf("Expected due date cleared, got %v", updated.DueDate)
	}
}

func TestCardUpdate_MoveBetweenColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	board, col1 := newBoardAndColumn(t, repo)

	col2, err := repo.CreateColumn(ctx, "Done", 1, board.ID)
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	card, err := repo.CreateCard(ctx, CreateCardParams{Title: "Task", Position: 0, ColumnID: col1.ID})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	updated, err := repo.UpdateCard(ctx, card.ID, UpdateCardParams{ColumnID: &col2.ID})
	if err != nil {
		t.Fatalf("Failed to move card: %v", err)
	}
	if updated.ColumnID != col2.ID {
		t.Errorf("Expected card in column %d, got %d", col2.ID, updated.ColumnID)
	}

	oldCards, err := repo.GetCardsByColumn(ctx, col1.ID)
	if err != nil {
		t.Fatalf("Failed to list old column: %v", err)
	}
	if len(oldCards) != 0 {
		t.Errorf("Expected old column empty, got %d cards", len(oldCards))
	}

	newCards, err := repo.GetCardsByColumn(ctx, col2.ID)
	if err != nil {
		t.Fatalf("Failed to list new column: %v", err)
	}
	if len(newCards) != 1 || newCards[0].ID != card.ID {
		t.Errorf("Expected moved card in new column, got %v", newCards)
	}
}

func TestCardUpdate_MoveToNonexistentColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	_, col := newBoardAndColumn(t, repo)

	card, err := repo.CreateCard(ctx, CreateCardParams{Title: "Task", Position: 0, ColumnID: col.ID})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	bogus := 999
	_, err = repo.UpdateCard(ctx, card.ID, UpdateCardParams{ColumnID: &bogus})
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("Expected ErrIntegrity, got %v", err)
	}

	// The failed move must not have been applied
	fetched, err := repo.GetCardByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("Failed to fetch card: %v", err)
	}
	if fetched.ColumnID != col.ID {
		t.Errorf("Expected card still in column %d, got %d", col.ID, fetched.ColumnID)
	}
}

func TestCardUpdate_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	title := "X"
	_, err := repo.UpdateCard(context.Background(), 999, UpdateCardParams{Title: &title})
	if !errors.Is(err, models.ErrCardNotFound) {
		t.Errorf("Expected ErrCardNotFound, got %v", err)
	}
}

func TestCardDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	_, col := newBoardAndColumn(t, repo)

	card, err := repo.CreateCard(ctx, CreateCardParams{Title: "Task", Position: 0, ColumnID: col.ID})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	if err := repo.DeleteCard(ctx, card.ID); err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}
	if _, err := repo.GetCardByID(ctx, card.ID); !errors.Is(err, models.ErrCardNotFound) {
		t.Errorf("Expected ErrCardNotFound after delete, got %v", err)
	}

	if err := repo.DeleteCard(ctx, card.ID); !errors.Is(err, models.ErrCardNotFound) {
		t.Errorf("Expected ErrCardNotFound on second delete, got %v", err)
	}
}

func TestCardGetByColumn_UnknownColumnIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	cards, err := repo.GetCardsByColumn(context.Background(), 999)
	if err != nil {
		t.Fatalf("Expected no error for unknown column, got %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Errorf("Expected empty slice, got %v", cards)
	}
}
