package board

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

func newService(t *testing.T) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(db))
}

func TestCreateBoard(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, "My Board")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if board.Title != "My Board" {
		t.Errorf("Expected title 'My Board', got %q", board.Title)
	}
	if len(board.Columns) != 0 {
		t.Errorf("Expected empty columns, got %d", len(board.Columns))
	}
}

func TestCreateBoard_EmptyTitle(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateBoard(context.Background(), "")
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}

	// Nothing must have been persisted
	boards, err := svc.ListBoards(context.Background())
	if err != nil {
		t.Fatalf("Failed to list boards: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("Expected no boards persisted, got %d", len(boards))
	}
}

func TestGetBoard_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetBoard(context.Background(), 999)
	if !errors.Is(err, models.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound, got %v", err)
	}
}

func TestDeleteBoard_NotFound(t *testing.T) {
	svc := newService(t)

	err := svc.DeleteBoard(context.Background(), 999)
	if !errors.Is(err, models.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound, got %v", err)
	}
}

func TestListBoards_Ordered(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		if _, err := svc.CreateBoard(ctx, title); err != nil {
			t.Fatalf("Failed to create board %q: %v", title, err)
		}
	}

	boards, err := svc.ListBoards(ctx)
	if err != nil {
		t.Fatalf("Failed to list boards: %v", err)
	}
	if len(boards) != 3 {
		t.Fatalf("Expected 3 boards, got %d", len(boards))
	}
	for i, want := range []string{"A", "B", "C"} {
		if boards[i].Title != want {
			t.Errorf("Expected board %d to be %q, got %q", i, want, boards[i].Title)
		}
	}
}
