package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

// Create inserts a new board. The server assigns the id and creation
// timestamp; the columns collection starts empty.
func (r *BoardRepo) Create(ctx context.Context, title string) (*models.Board, error) {
	createdAt := time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (title, created_at) VALUES (?, ?)`,
		title, createdAt,
	)
	if err != nil {
		return nil, translateConstraint(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Board{
		ID:        int(id),
		Title:     title,
		CreatedAt: createdAt,
		Columns:   []*models.Column{},
	}, nil
}

// GetAll retrieves every board with its columns and cards nested.
// Loads each level in a single query to avoid N+1 round trips.
func (r *BoardRepo) GetAll(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM boards ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	byID := make(map[int]*models.Board)
	for rows.Next() {
		board := &models.Board{Columns: []*models.Column{}}
		if err := rows.Scan(&board.ID, &board.Title, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
		byID[board.ID] = board
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(boards) == 0 {
		return boards, nil
	}

	columns, err := queryColumns(ctx, r.db, `SELECT id, title, position, board_id FROM columns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	cards, err := queryCards(ctx, r.db, `SELECT id, title, description, position, column_id, due_date, assignee, created_at FROM cards ORDER BY id`)
	if err != nil {
		return nil, err
	}

	attachCards(columns, cards)
	for _, col := range columns {
		if board, ok := byID[col.BoardID]; ok {
			board.Columns = append(board.Columns, col)
		}
	}

	return boards, nil
}

// GetByID retrieves a single board with its columns and cards nested.
// Returns models.ErrBoardNotFound if the id does not exist.
func (r *BoardRepo) GetByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{Columns: []*models.Column{}}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, created_at FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Title, &board.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}

	columns, err := queryColumns(ctx, r.db,
		`SELECT id, title, position, board_id FROM columns WHERE board_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	cards, err := queryCards(ctx, r.db,
		`SELECT id, title, description, position, column_id, due_date, assignee, created_at
		 FROM cards
		 WHERE column_id IN (SELECT id FROM columns WHERE board_id = ?)
		 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}

	attachCards(columns, cards)
	board.Columns = columns

	return board, nil
}

// Delete removes a board. The schema's ON DELETE CASCADE removes all of its
// columns and their cards within the same atomic statement.
func (r *BoardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrBoardNotFound
	}
	return nil
}

// queryColumns runs a column select and scans the rows, giving each column
// an empty (non-nil) cards slice.
func queryColumns(ctx context.Context, db *sql.DB, query string, args ...any) ([]*models.Column, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	columns := []*models.Column{}
	for rows.Next() {
		col := &models.Column{Cards: []*models.Card{}}
		if err := rows.Scan(&col.ID, &col.Title, &col.Position, &col.BoardID); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}

// queryCards runs a card select and scans the rows, converting nullable
// columns to pointers.
func queryCards(ctx context.Context, db *sql.DB, query string, args ...any) ([]*models.Card, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		card, err := scanCard(rows.Scan)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// scanCard scans a full card row from any Scan-shaped source.
func scanCard(scan func(...any) error) (*models.Card, error) {
	card := &models.Card{}
	var description, assignee sql.NullString
	var dueDate sql.NullTime
	if err := scan(
		&card.ID, &card.Title, &description, &card.Position,
		&card.ColumnID, &dueDate, &assignee, &card.CreatedAt,
	); err != nil {
		return nil, err
	}
	card.Description = nullStringToPtr(description)
	card.DueDate = nullTimeToPtr(dueDate)
	card.Assignee = nullStringToPtr(assignee)
	return card, nil
}

// attachCards groups cards under their owning columns, preserving query order.
func attachCards(columns []*models.Column, cards []*models.Card) {
	byColumn := make(map[int]*models.Column, len(columns))
	for _, col := range columns {
		byColumn[col.ID] = col
	}
	for _, card := range cards {
		if col, ok := byColumn[card.ColumnID]; ok {
			col.Cards = append(col.Cards, card)
		}
	}
}
