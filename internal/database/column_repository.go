package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

// Create inserts a new column for a board. The board must exist; the
// foreign key constraint rejects the insert otherwise (ErrIntegrity).
func (r *ColumnRepo) Create(ctx context.Context, title string, position, boardID int) (*models.Column, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (title, position, board_id) VALUES (?, ?, ?)`,
		title, position, boardID,
	)
	if err != nil {
		return nil, translateConstraint(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Column{
		ID:       int(id),
		Title:    title,
		Position: position,
		BoardID:  boardID,
		Cards:    []*models.Card{},
	}, nil
}

// GetByBoard retrieves all columns for a board with their cards nested.
// Returns an empty slice when the board has no columns or does not exist;
// no existence check is performed.
func (r *ColumnRepo) GetByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	columns, err := queryColumns(ctx, r.db,
		`SELECT id, title, position, board_id FROM columns WHERE board_id = ? ORDER BY id`, boardID)
	if err != nil {
		return nil, err
	}
	cards, err := queryCards(ctx, r.db,
		`SELECT id, title, description, position, column_id, due_date, assignee, created_at
		 FROM cards WHERE column_id IN (SELECT id FROM columns WHERE board_id = ?)
		 ORDER BY id`, boardID)
	if err != nil {
		return nil, err
	}
	attachCards(columns, cards)
	return columns, nil
}

// GetByID retrieves a single column with its cards nested.
func (r *ColumnRepo) GetByID(ctx context.Context, id int) (*models.Column, error) {
	col := &models.Column{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, position, board_id FROM columns WHERE id = ?`, id,
	).Scan(&col.ID, &col.Title, &col.Position, &col.BoardID)
	if err == sql.ErrNoRows {
		return nil, models.ErrColumnNotFound
	}
	if err != nil {
		return nil, err
	}

	cards, err := queryCards(ctx, r.db,
		`SELECT id, title, description, position, column_id, due_date, assignee, created_at
		 FROM cards WHERE column_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	col.Cards = cards

	return col, nil
}

// Update applies a partial update: nil fields are left unchanged. The write
// runs in a transaction so the existence check and the update commit
// together. Returns the fresh column with cards nested.
func (r *ColumnRepo) Update(ctx context.Context, id int, title *string, position *int) (*models.Column, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT id FROM columns WHERE id = ?`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return models.ErrColumnNotFound
		}
		if err != nil {
			return err
		}

		sets := []string{}
		args := []any{}
		if title != nil {
			sets = append(sets, "title = ?")
			args = append(args, *title)
		}
		if position != nil {
			sets = append(sets, "position = ?")
			args = append(args, *position)
		}
		if len(sets) == 0 {
			return nil
		}

		args = append(args, id)
		query := fmt.Sprintf(`UPDATE columns SET %s WHERE id = ?`, strings.Join(sets, ", "))
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return translateConstraint(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes a column. ON DELETE CASCADE removes its cards within the
// same atomic statement.
func (r *ColumnRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrColumnNotFound
	}
	return nil
}
