package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/foldervault/internal/client/models"
	"github.com/dmitrijs2005/foldervault/internal/client/storage"
	"github.com/dmitrijs2005/foldervault/internal/common"
	"github.com/google/uuid"
)

// CipherService owns the locally stored items of each user.
type CipherService interface {
	GetAllForUser(ctx context.Context, userID string) (map[string]*models.CipherData, error)
	Add(ctx context.Context, cipherType models.CipherType, name models.EncString, folderID string) (*models.CipherData, error)
	Upsert(ctx context.Context, ciphers ...*models.CipherData) error
	Clear(ctx context.Context, userID string) error
}

type cipherService struct {
	users   UserService
	storage storage.Service
	now     func() time.Time
}

func NewCipherService(users UserService, store storage.Service) CipherService {
	return &cipherService{users: users, storage: store, now: time.Now}
}

func ciphersKey(userID string) string {
	return fmt.Sprintf(common.CiphersKeyFormat, userID)
}

// GetAllForUser returns the items of userID keyed by id. A user without items
// gets an empty map.
func (s *cipherService) GetAllForUser(ctx context.Context, userID string) (map[string]*models.CipherData, error) {
	ciphers := map[string]*models.CipherData{}
	if _, err := s.storage.Get(ctx, ciphersKey(userID), &ciphers); err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if ciphers == nil {
		ciphers = map[string]*models.CipherData{}
	}
	return ciphers, nil
}

// Add stores a new item for the current user under a fresh id.
func (s *cipherService) Add(ctx context.Context, cipherType models.CipherType, name models.EncString, folderID string) (*models.CipherData, error) {
	userID, err := s.users.GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	c := &models.CipherData{
		ID:           uuid.NewString(),
		UserID:       userID,
		FolderID:     folderID,
		Type:         cipherType,
		Name:         name,
		RevisionDate: s.now().UTC(),
	}
	if err := s.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Upsert merges ciphers into the current user's collection by id and writes
// the collection back in one save.
func (s *cipherService) Upsert(ctx context.Context, ciphers ...*models.CipherData) error {
	userID, err := s.users.GetUserID(ctx)
	if err != nil {
		return err
	}

	stored, err := s.GetAllForUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, c := range ciphers {
		stored[c.ID] = c
	}

	if err := s.storage.Save(ctx, ciphersKey(userID), stored); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

func (s *cipherService) Clear(ctx context.Context, userID string) error {
	if err := s.storage.Remove(ctx, ciphersKey(userID)); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	return nil
}
