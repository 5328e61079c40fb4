package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// CardRepo handles all card-related database operations.
type CardRepo struct {
	db *sql.DB
}

// CreateCardParams encapsulates the fields for inserting a card. The
// optional fields default to NULL when their pointers are nil.
type CreateCardParams struct {
	Title       string
	Position    int
	ColumnID    int
	Description *string
	DueDate     *time.Time
	Assignee    *string
}

// UpdateCardParams describes a partial card update. Title, Position and
// ColumnID apply only when non-nil. Description, DueDate and Assignee are
// tri-state: untouched when not Set, cleared to NULL when Set without a
// value, assigned otherwise.
type UpdateCardParams struct {
	Title       *string
	Position    *int
	ColumnID    *int
	Description models.Optional[string]
	DueDate     models.Optional[time.Time]
	Assignee    models.Optional[string]
}

// Create inserts a new card. The column must exist; the foreign key
// constraint rejects the insert otherwise (ErrIntegrity).
func (r *CardRepo) Create(ctx context.Context, params CreateCardParams) (*models.Card, error) {
	createdAt := time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (title, description, position, column_id, due_date, assignee, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		params.Title, ptrToAny(params.Description), params.Position, params.ColumnID,
		ptrToAny(params.DueDate), ptrToAny(params.Assignee), createdAt,
	)
	if err != nil {
		return nil, translateConstraint(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Card{
		ID:          int(id),
		Title:       params.Title,
		Description: params.Description,
		Position:    params.Position,
		ColumnID:    params.ColumnID,
		DueDate:     params.DueDate,
		Assignee:    params.Assignee,
		CreatedAt:   createdAt,
	}, nil
}

// GetByColumn retrieves all cards for a column. Returns an empty slice when
// the column has no cards or does not exist.
func (r *CardRepo) GetByColumn(ctx context.Context, columnID int) ([]*models.Card, error) {
	return queryCards(ctx, r.db,
		`SELECT id, title, description, position, column_id, due_date, assignee, created_at
		 FROM cards WHERE column_id = ? ORDER BY id`, columnID)
}

// GetByID retrieves a single card.
func (r *CardRepo) GetByID(ctx context.Context, id int) (*models.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx,
		`SELECT id, title, description, position, column_id, due_date, assignee, created_at
		 FROM cards WHERE id = ?`, id,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, models.ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// Update applies a partial update per UpdateCardParams semantics and returns
// the fresh card. Moving the card via ColumnID is subject to the foreign key
// constraint on the target column.
func (r *CardRepo) Update(ctx context.Context, id int, params UpdateCardParams) (*models.Card, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT id FROM cards WHERE id = ?`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return models.ErrCardNotFound
		}
		if err != nil {
			return err
		}

		sets := []string{}
		args := []any{}
		if params.Title != nil {
			sets = append(sets, "title = ?")
			args = append(args, *params.Title)
		}
		if params.Position != nil {
			sets = append(sets, "position = ?")
			args = append(args, *params.Position)
		}
		if params.ColumnID != nil {
			sets = append(sets, "column_id = ?")
			args = append(args, *params.ColumnID)
		}
		if params.Description.Set {
			sets = append(sets, "description = ?")
			args = append(args, ptrToAny(params.Description.Ptr()))
		}
		if params.DueDate.Set {
			sets = append(sets, "due_date = ?")
			args = append(args, ptrToAny(params.DueDate.Ptr()))
		}
		if params.Assignee.Set {
			sets = append(sets, "assignee = ?")
			args = append(args, ptrToAny(params.Assignee.Ptr()))
		}
		if len(sets) == 0 {
			return nil
		}

		args = append(args, id)
		query := fmt.Sprintf(`UPDATE cards SET %s WHERE id = ?`, strings.Join(sets, ", "))
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

// Delete removes a card permanently.
func (r *CardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrCardNotFound
	}
	return nil
}
