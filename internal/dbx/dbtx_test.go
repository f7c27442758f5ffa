package dbx

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openRecords(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE records (key TEXT PRIMARY KEY, value BLOB)`)
	require.NoError(t, err)
	return db
}

func recordCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n))
	return n
}

func insertRecord(key string) func(ctx context.Context, tx DBTX) error {
	return func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO records(key, value) VALUES (?, ?)`, key, []byte("v"))
		return err
	}
}

func TestWithTx(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		fn        func(ctx context.Context, tx DBTX) error
		wantErr   bool
		wantIs    error
		wantCount int
	}{
		{
			name:      "commit",
			fn:        insertRecord("a"),
			wantCount: 1,
		},
		{
			name: "rollback on error",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := insertRecord("a")(ctx, tx); err != nil {
					return err
				}
				return errBoom
			},
			wantErr: true,
			wantIs:  errBoom,
		},
		{
			name: "rollback after partial batch",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := insertRecord("a")(ctx, tx); err != nil {
					return err
				}
				return insertRecord("a")(ctx, tx)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openRecords(t)
			err := WithTx(context.Background(), db, nil, tt.fn)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIs != nil {
					require.ErrorIs(t, err, tt.wantIs)
				}
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantCount, recordCount(t, db))
		})
	}
}

func TestWithTx_PanicRollsBack(t *testing.T) {
	db := openRecords(t)

	require.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insertRecord("p")(ctx, tx))
			panic("kaput")
		})
	})
	require.Zero(t, recordCount(t, db))
}

func TestWithTx_BeginError(t *testing.T) {
	db := openRecords(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "begin tx")
	require.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errCommit := errors.New("commit failed")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errCommit)

	err = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error { return nil })
	require.ErrorIs(t, err, errCommit)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackErrorIsJoined(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errFn := errors.New("fn failed")
	errRollback := errors.New("rollback failed")
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errRollback)

	err = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error { return errFn })
	require.ErrorIs(t, err, errFn)
	require.ErrorIs(t, err, errRollback)
	require.NoError(t, mock.ExpectationsWereMet())
}
