package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/foldervault/internal/dbx"
)

// SQLiteService implements Service over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteService struct {
	db dbx.DBTX
}

// NewSQLiteService returns a SQLiteService bound to the given DBTX.
func NewSQLiteService(db dbx.DBTX) *SQLiteService {
	return &SQLiteService{db: db}
}

func (s *SQLiteService) Get(ctx context.Context, key string, v any) (bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get record[%s]: %w", key, err)
	}

	if err := json.Unmarshal(value, v); err != nil {
		return false, fmt.Errorf("failed to decode record[%s]: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteService) Save(ctx context.Context, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record[%s]: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save record[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteService) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove record[%s]: %w", key, err)
	}
	return nil
}
