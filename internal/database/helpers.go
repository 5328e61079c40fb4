package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sqlite "modernc.org/sqlite"
)

// ErrIntegrity indicates a storage constraint violation, e.g. inserting a
// column against a board id that does not exist. Callers should treat it as
// a client error, not a server fault.
var ErrIntegrity = errors.New("integrity constraint violated")

const sqliteConstraint = 19 // SQLITE_CONSTRAINT primary result code

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// translateConstraint maps SQLite constraint failures to ErrIntegrity so the
// rest of the application never inspects driver error codes. Other errors
// pass through unchanged.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqliteConstraint {
		return fmt.Errorf("%w: %v", ErrIntegrity, err)
	}
	return err
}

// nullStringToPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// nullTimeToPtr converts sql.NullTime to *time.Time.
// Returns nil if the value is not valid.
func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

// ptrToAny unwraps a pointer into a driver-friendly value, passing NULL
// through for nil pointers.
func ptrToAny[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
