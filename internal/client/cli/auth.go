package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/foldervault/internal/common"
)

var errNoUserID = errors.New("user id is required")

// promptCredentials asks for the user id, then reads the password with
// readPw.
func (a *App) promptCredentials(readPw func(io.Writer) ([]byte, error)) (string, []byte, error) {
	userName, err := GetSimpleText(a.reader, "Enter user id", a.out)
	if err != nil {
		return "", nil, err
	}
	if userName == "" {
		return "", nil, errNoUserID
	}
	password, err := readPw(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

func existingPassword(w io.Writer) ([]byte, error) {
	return GetPassword("Master password", w)
}

// Init creates a local profile for a new user and unlocks it.
func (a *App) Init(ctx context.Context) error {
	userName, password, err := a.promptCredentials(NewPassword)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Init(ctx, userName, password); err != nil {
		return err
	}
	a.setUser(userName)
	fmt.Fprintln(a.out, "Profile created, vault unlocked")
	return nil
}

// Unlock derives the key for an existing profile.
func (a *App) Unlock(ctx context.Context) error {
	userName, password, err := a.promptCredentials(existingPassword)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Unlock(ctx, userName, password); err != nil {
		a.logger.Warn(ctx, "unlock failed", "user", userName, "error", err)
		return err
	}
	a.setUser(userName)
	fmt.Fprintln(a.out, "Vault unlocked")
	return nil
}

// Lock forgets the key and the decrypted folder list.
func (a *App) Lock(ctx context.Context) error {
	a.auth.Lock(ctx)
	a.setUser("")
	fmt.Fprintln(a.out, "Vault locked")
	return nil
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
}
