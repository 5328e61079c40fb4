// Package testutil provides shared test fixtures
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/tablero/internal/database"
)

// SetupTestDB creates an in-memory database with the real schema applied.
// The connection is closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})

	// A second pool connection would see a different empty :memory: database
	db.SetMaxOpenConns(1)

	ctx := context.Background()

	// Enable foreign key constraints (required for CASCADE deletions)
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}
