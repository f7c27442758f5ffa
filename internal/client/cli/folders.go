package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/foldervault/internal/client/i18n"
	"github.com/dmitrijs2005/foldervault/internal/client/models"
)

var (
	ErrLocked = errors.New("vault is locked, use init or unlock")
	ErrUsage  = errors.New("usage")
)

func (a *App) requireUnlocked() error {
	if !a.isUnlocked() {
		return ErrLocked
	}
	return nil
}

func shortID(id string) string {
	if id == "" {
		return "-"
	}
	return id
}

// ListFolders prints the decrypted folder list, "no folder" last.
func (a *App) ListFolders(ctx context.Context) error {
	views, err := a.folders.GetAllDecrypted(ctx)
	if err != nil {
		return err
	}

	fallback := a.locale.T(i18n.DecryptErrorKey)
	for _, v := range views {
		fmt.Fprintf(a.out, "%-36s  %s\n", shortID(v.ID), v.DisplayName(fallback))
	}
	return nil
}

// AddFolder creates a folder named by the joined args on the server and
// stores it locally.
func (a *App) AddFolder(ctx context.Context, args []string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: add <name>", ErrUsage)
	}
	name := strings.Join(args, " ")

	folder, err := a.folders.Encrypt(ctx, models.FolderView{Name: &name}, nil)
	if err != nil {
		return err
	}

	rctx, cancel := a.remote(ctx)
	defer cancel()
	if err := a.folders.SaveWithServer(rctx, folder); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created folder %s\n", folder.ID)
	return nil
}

func (a *App) RenameFolder(ctx context.Context, args []string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: rename <id> <name>", ErrUsage)
	}
	id, name := args[0], strings.Join(args[1:], " ")

	existing, err := a.folders.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("folder %s not found", id)
	}

	folder, err := a.folders.Encrypt(ctx, models.FolderView{ID: id, Name: &name, RevisionDate: existing.RevisionDate}, nil)
	if err != nil {
		return err
	}

	rctx, cancel := a.remote(ctx)
	defer cancel()
	if err := a.folders.SaveWithServer(rctx, folder); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Renamed folder %s\n", id)
	return nil
}

// DeleteFolder deletes on the server first, then locally. Items in the folder
// move to "no folder".
func (a *App) DeleteFolder(ctx context.Context, args []string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", ErrUsage)
	}

	rctx, cancel := a.remote(ctx)
	defer cancel()
	if err := a.folders.DeleteWithServer(rctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted folder %s\n", args[0])
	return nil
}

func (a *App) Sync(ctx context.Context) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}

	rctx, cancel := a.remote(ctx)
	defer cancel()
	if err := a.folders.SyncWithServer(rctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)

	fmt.Fprintln(a.out, "Folders synchronized")
	return nil
}

// ClearFolders removes the current user's folders from the local vault only.
func (a *App) ClearFolders(ctx context.Context) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}
	userID, err := a.users.GetUserID(ctx)
	if err != nil {
		return err
	}
	if err := a.folders.Clear(ctx, userID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Local folders cleared")
	return nil
}
