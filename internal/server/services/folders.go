package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/foldervault/internal/server/models"
	"github.com/dmitrijs2005/foldervault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	ErrEmptyFolderName = errors.New("folder name is empty")
	ErrEmptyFolderID   = errors.New("folder id is empty")
)

// FolderService owns the per-user folder collection. The server assigns ids
// and revision dates; names are opaque ciphertext.
type FolderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	newID       func() string
}

func NewFolderService(db *sql.DB, m repomanager.RepositoryManager) *FolderService {
	return &FolderService{
		db:          db,
		repomanager: m,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *FolderService) Create(ctx context.Context, userID, name string) (*models.Folder, error) {
	if name == "" {
		return nil, ErrEmptyFolderName
	}
	f := &models.Folder{
		ID:           s.newID(),
		UserID:       userID,
		Name:         name,
		RevisionDate: s.now().UTC(),
	}
	if err := s.repomanager.Folders(s.db).Create(ctx, f); err != nil {
		return nil, fmt.Errorf("error creating folder: %w", err)
	}
	return f, nil
}

// Update renames the folder and bumps its revision date. Returns
// common.ErrorNotFound if the user has no folder with that id.
func (s *FolderService) Update(ctx context.Context, userID, id, name string) (*models.Folder, error) {
	switch {
	case id == "":
		return nil, ErrEmptyFolderID
	case name == "":
		return nil, ErrEmptyFolderName
	}
	f := &models.Folder{
		ID:           id,
		UserID:       userID,
		Name:         name,
		RevisionDate: s.now().UTC(),
	}
	if err := s.repomanager.Folders(s.db).Update(ctx, f); err != nil {
		return nil, fmt.Errorf("error updating folder: %w", err)
	}
	return f, nil
}

func (s *FolderService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrEmptyFolderID
	}
	if err := s.repomanager.Folders(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting folder: %w", err)
	}
	return nil
}

func (s *FolderService) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	result, err := s.repomanager.Folders(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing folders: %w", err)
	}
	return result, nil
}
