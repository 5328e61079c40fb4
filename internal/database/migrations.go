package database

import (
	"context"
	"database/sql"
)

// Migrate creates the database schema. It is safe to run on every startup
// and is reused by the test fixtures so tests exercise the real schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	// Create boards table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS boards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create columns table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS columns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			position INTEGER NOT NULL,
			board_id INTEGER NOT NULL,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create cards table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			position INTEGER NOT NULL,
			column_id INTEGER NOT NULL,
			due_date TIMESTAMP,
			assignee TEXT,
			created_at TIMESTAMP NOT NULL,
			FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create indexes for efficient queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_columns_board
		ON columns(board_id, position)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_cards_column
		ON cards(column_id, position)
	`)
	if err != nil {
		return err
	}

	return nil
}
