package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foldervault/internal/client/client"
	"github.com/dmitrijs2005/foldervault/internal/client/crypto"
	"github.com/dmitrijs2005/foldervault/internal/client/storage"
	"github.com/dmitrijs2005/foldervault/internal/common"
	"github.com/dmitrijs2005/foldervault/internal/cryptox"
	"github.com/dmitrijs2005/foldervault/internal/dbx"
)

// AuthService manages local profiles and the unlocked state of the vault.
//
// Contract:
//   - Init: create a profile (salt and verifier) for a user and unlock it.
//   - Unlock: derive the master key from the password, check it against the
//     stored verifier and install it in the encryption gateway.
//   - Lock: drop the key and the decrypted folder cache.
//   - ClearLocalData: remove the profile, folders and items of a user.
type AuthService interface {
	Init(ctx context.Context, userID string, password []byte) error
	Unlock(ctx context.Context, userID string, password []byte) error
	Lock(ctx context.Context)
	IsUnlocked() bool
	Ping(ctx context.Context) error
	ClearLocalData(ctx context.Context, userID string) error
}

type authService struct {
	db      *sql.DB
	storage storage.Service
	client  client.Client
	crypto  crypto.Service
	users   UserService
	folders FolderService
	ciphers CipherService
}

func NewAuthService(db *sql.DB, c client.Client, cryptoSvc crypto.Service, users UserService, folders FolderService, ciphers CipherService) AuthService {
	return &authService{
		db:      db,
		storage: storage.NewSQLiteService(db),
		client:  c,
		crypto:  cryptoSvc,
		users:   users,
		folders: folders,
		ciphers: ciphers,
	}
}

func saltKey(userID string) string     { return fmt.Sprintf(common.SaltKeyFormat, userID) }
func verifierKey(userID string) string { return fmt.Sprintf(common.VerifierKeyFormat, userID) }

// Init fails with common.ErrorProfileExists if userID already has a profile.
func (a *authService) Init(ctx context.Context, userID string, password []byte) error {
	var existing []byte
	ok, err := a.storage.Get(ctx, saltKey(userID), &existing)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if ok {
		return common.ErrorProfileExists
	}

	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteService(tx)
		if err := st.Save(ctx, saltKey(userID), salt); err != nil {
			return err
		}
		return st.Save(ctx, verifierKey(userID), verifier)
	})
	if err != nil {
		return fmt.Errorf("profile saving error: %w", err)
	}

	return a.activate(ctx, userID, key)
}

// Unlock returns ErrLocalDataNotAvailable if userID has no profile and
// common.ErrorUnauthorized if the password does not match.
func (a *authService) Unlock(ctx context.Context, userID string, password []byte) error {
	var salt, verifier []byte

	ok, err := a.storage.Get(ctx, saltKey(userID), &salt)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if !ok {
		return ErrLocalDataNotAvailable
	}
	ok, err = a.storage.Get(ctx, verifierKey(userID), &verifier)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if !ok {
		return ErrLocalDataNotAvailable
	}

	keyCandidate := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(keyCandidate)

	if subtle.ConstantTimeCompare(verifier, cryptox.MakeVerifier(keyCandidate)) == 0 {
		return common.ErrorUnauthorized
	}
	return a.activate(ctx, userID, keyCandidate)
}

func (a *authService) activate(ctx context.Context, userID string, key []byte) error {
	if err := a.users.SetUserID(ctx, userID); err != nil {
		return err
	}
	if err := a.crypto.SetKey(key); err != nil {
		return err
	}
	a.folders.ClearCache()
	return nil
}

func (a *authService) Lock(ctx context.Context) {
	a.crypto.ClearKey()
	a.folders.ClearCache()
}

func (a *authService) IsUnlocked() bool {
	return a.crypto.HasKey()
}

// Ping proxies a liveness check to the sync service.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) ClearLocalData(ctx context.Context, userID string) error {
	if err := a.folders.Clear(ctx, userID); err != nil {
		return err
	}
	if err := a.ciphers.Clear(ctx, userID); err != nil {
		return err
	}
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteService(tx)
		if err := st.Remove(ctx, saltKey(userID)); err != nil {
			return err
		}
		return st.Remove(ctx, verifierKey(userID))
	})
}
