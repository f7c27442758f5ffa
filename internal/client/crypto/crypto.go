// Package crypto is the client's encryption gateway. It holds the unlocked
// master key in memory and seals or opens individual values with it.
package crypto

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/foldervault/internal/client/models"
	"github.com/dmitrijs2005/foldervault/internal/common"
	"github.com/dmitrijs2005/foldervault/internal/cryptox"
)

// Service encrypts and decrypts display values. Every method that takes a
// key falls back to the current master key when key is nil.
type Service interface {
	HasKey() bool
	SetKey(key []byte) error
	ClearKey()
	Encrypt(ctx context.Context, plaintext string, key []byte) (models.EncString, error)
	Decrypt(ctx context.Context, value models.EncString, key []byte) (string, error)
}

// KeyService is the in-memory Service implementation. It is safe for
// concurrent use.
type KeyService struct {
	mu  sync.RWMutex
	key []byte
}

func NewKeyService() *KeyService {
	return &KeyService{}
}

func (s *KeyService) HasKey() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

// SetKey installs a copy of key as the master key.
func (s *KeyService) SetKey(key []byte) error {
	if len(key) != cryptox.KeySize {
		return fmt.Errorf("%w: want %d bytes, got %d", common.ErrorInvalidKey, cryptox.KeySize, len(key))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.key)
	s.key = append([]byte(nil), key...)
	return nil
}

// ClearKey wipes and forgets the master key.
func (s *KeyService) ClearKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.key)
	s.key = nil
}

func (s *KeyService) Encrypt(ctx context.Context, plaintext string, key []byte) (models.EncString, error) {
	k, err := s.resolve(key)
	if err != nil {
		return models.EncString{}, err
	}

	ct, nonce, err := cryptox.Seal([]byte(plaintext), k)
	if err != nil {
		return models.EncString{}, fmt.Errorf("encryption error: %w", err)
	}
	return models.EncString{Nonce: nonce, Data: ct}, nil
}

func (s *KeyService) Decrypt(ctx context.Context, value models.EncString, key []byte) (string, error) {
	if err := value.Err(); err != nil {
		return "", err
	}
	k, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	pt, err := cryptox.Open(value.Data, value.Nonce, k)
	if err != nil {
		return "", fmt.Errorf("decryption error: %w", err)
	}
	return string(pt), nil
}

// resolve returns key, or a private copy of the master key when key is nil.
func (s *KeyService) resolve(key []byte) ([]byte, error) {
	if key != nil {
		return key, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, common.ErrNoEncryptionKey
	}
	return append([]byte(nil), s.key...), nil
}
