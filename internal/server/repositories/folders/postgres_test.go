package folders

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/foldervault/internal/common"
	"github.com/dmitrijs2005/foldervault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQ = `(?s)^INSERT\s+INTO\s+folders\s*\(id,\s*user_id,\s*name,\s*revision_date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`
	updateQ = `(?s)^UPDATE\s+folders\s+SET\s+name\s*=\s*\$1,\s*revision_date\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s+AND\s+user_id\s*=\s*\$4\s*$`
	deleteQ = `(?s)^DELETE\s+FROM\s+folders\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`
	listQ   = `(?s)^SELECT\s+id,\s*user_id,\s*name,\s*revision_date\s+FROM\s+folders\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func sample() *models.Folder {
	return &models.Folder{
		ID:           "f1",
		UserID:       "u1",
		Name:         "2.iv|ct|mac",
		RevisionDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	f := sample()

	mock.ExpectExec(insertQ).
		WithArgs(f.ID, f.UserID, f.Name, f.RevisionDate).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), f))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	boom := errors.New("db down")

	mock.ExpectExec(insertQ).WillReturnError(boom)

	err := repo.Create(context.Background(), sample())
	require.ErrorIs(t, err, boom)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name         string
		result       sql.Result
		execErr      error
		wantErr      bool
		wantNotFound bool
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), wantErr: true, wantNotFound: true},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("driver")), wantErr: true},
		{name: "exec error", execErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			f := sample()

			e := mock.ExpectExec(updateQ).WithArgs(f.Name, f.RevisionDate, f.ID, f.UserID)
			if tt.execErr != nil {
				e.WillReturnError(tt.execErr)
			} else {
				e.WillReturnResult(tt.result)
			}

			err := repo.Update(context.Background(), f)
			if !tt.wantErr {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantNotFound, errors.Is(err, common.ErrorNotFound))
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(deleteQ).WithArgs("f1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteQ).WithArgs("f2", "u1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "u1", "f1"))
	require.ErrorIs(t, repo.Delete(context.Background(), "u1", "f2"), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	f := sample()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "revision_date"}).
		AddRow(f.ID, f.UserID, f.Name, f.RevisionDate).
		AddRow("f2", "u1", "2.a|b|c", f.RevisionDate)
	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, f, got[0])
	assert.Equal(t, "f2", got[1].ID)
}

func TestListByUser_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(listQ).WillReturnError(errors.New("db down"))
		_, err := repo.ListByUser(context.Background(), "u1")
		require.Error(t, err)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "revision_date"}).
			AddRow("f1", "u1", "n", "not a time")
		mock.ExpectQuery(listQ).WillReturnRows(rows)
		_, err := repo.ListByUser(context.Background(), "u1")
		require.ErrorContains(t, err, "scan error")
	})

	t.Run("rows", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "revision_date"}).
			AddRow("f1", "u1", "n", time.Now()).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery(listQ).WillReturnRows(rows)
		_, err := repo.ListByUser(context.Background(), "u1")
		require.ErrorContains(t, err, "broken row")
	})
}
