package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/foldervault/internal/common"
	"github.com/dmitrijs2005/foldervault/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFolderService(t *testing.T) *FolderService {
	t.Helper()
	s := NewFolderService(nil, repomanager.NewInMemoryRepositoryManager())
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)) }
	n := 0
	s.newID = func() string {
		n++
		return []string{"id-1", "id-2", "id-3"}[n-1]
	}
	return s
}

func TestFolderService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newFolderService(t)

	f, err := s.Create(ctx, "u1", "enc-a")
	require.NoError(t, err)
	assert.Equal(t, "id-1", f.ID)
	assert.Equal(t, time.UTC, f.RevisionDate.Location())

	_, err = s.Create(ctx, "u2", "enc-b")
	require.NoError(t, err)

	updated, err := s.Update(ctx, "u1", "id-1", "enc-a2")
	require.NoError(t, err)
	assert.Equal(t, "enc-a2", updated.Name)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "enc-a2", list[0].Name)

	_, err = s.Update(ctx, "u2", "id-1", "steal")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, s.Delete(ctx, "u2", "id-1"), common.ErrorNotFound)

	require.NoError(t, s.Delete(ctx, "u1", "id-1"))
	list, err = s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFolderService_Validation(t *testing.T) {
	ctx := context.Background()
	s := newFolderService(t)

	_, err := s.Create(ctx, "u1", "")
	require.ErrorIs(t, err, ErrEmptyFolderName)
	_, err = s.Update(ctx, "u1", "", "x")
	require.ErrorIs(t, err, ErrEmptyFolderID)
	_, err = s.Update(ctx, "u1", "id", "")
	require.ErrorIs(t, err, ErrEmptyFolderName)
	require.ErrorIs(t, s.Delete(ctx, "u1", ""), ErrEmptyFolderID)
}

func TestFolderService_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewFolderService(db, repomanager.NewPostgresRepositoryManager())
	boom := errors.New("db down")

	mock.ExpectExec("INSERT INTO folders").WillReturnError(boom)
	mock.ExpectQuery("SELECT id, user_id, name, revision_date").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "revision_date"}).
			AddRow("f1", "u1", "enc", time.Now()))

	_, err = s.Create(context.Background(), "u1", "enc")
	require.ErrorIs(t, err, boom)

	list, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
