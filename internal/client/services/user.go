package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foldervault/internal/client/storage"
	"github.com/dmitrijs2005/foldervault/internal/common"
)

// UserService reports which user the local data belongs to. Every persisted
// collection is namespaced by the id it returns.
type UserService interface {
	GetUserID(ctx context.Context) (string, error)
	SetUserID(ctx context.Context, userID string) error
}

type userService struct {
	storage storage.Service
}

func NewUserService(store storage.Service) UserService {
	return &userService{storage: store}
}

// GetUserID returns ErrNoActiveUser until a profile has been unlocked.
func (s *userService) GetUserID(ctx context.Context) (string, error) {
	var userID string
	ok, err := s.storage.Get(ctx, common.UserIDKey, &userID)
	if err != nil {
		return "", fmt.Errorf("read active user: %w", err)
	}
	if !ok || userID == "" {
		return "", ErrNoActiveUser
	}
	return userID, nil
}

func (s *userService) SetUserID(ctx context.Context, userID string) error {
	if err := s.storage.Save(ctx, common.UserIDKey, userID); err != nil {
		return fmt.Errorf("save active user: %w", err)
	}
	return nil
}
