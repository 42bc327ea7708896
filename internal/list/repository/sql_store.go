package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ttkcys/milliyetciler/internal/list/domain"
)

// SQLListStore reads and writes the list columns on the users table
// with plain parameterized SQL. The column name comes from the closed
// ListKind mapping, never from user input.
type SQLListStore struct {
	db *sql.DB
}

// NewSQLListStore creates a new SQL-backed list store
func NewSQLListStore(db *sql.DB) *SQLListStore {
	return &SQLListStore{db: db}
}

// ReadColumn returns the raw list column value for the user
func (s *SQLListStore) ReadColumn(ctx context.Context, userID uint, kind domain.ListKind) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", kind.Column())

	var raw sql.NullString
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrUserMissing
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s for user %d: %w", kind.Column(), userID, err)
	}
	return raw.String, nil
}

// WriteColumn stores the raw column value and touches updated_at. It
// returns the number of rows affected.
func (s *SQLListStore) WriteColumn(ctx context.Context, userID uint, kind domain.ListKind, raw string) (int64, error) {
	query := fmt.Sprintf("UPDATE users SET %s = $1, updated_at = NOW() WHERE id = $2", kind.Column())

	result, err := s.db.ExecContext(ctx, query, raw, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to write %s for user %d: %w", kind.Column(), userID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}
