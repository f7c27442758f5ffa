package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/foldervault/internal/client/i18n"
	"github.com/dmitrijs2005/foldervault/internal/client/models"
)

const addItemUsage = "additem [login|note|credit_card] <folder id|-> <name>"

// AddItem stores a local item, a note unless a type is given first. The next
// arg is a folder id, or "-" for no folder.
func (a *App) AddItem(ctx context.Context, args []string) error {
	if err := a.requireUnlocked(); err != nil {
		return err
	}

	itemType := models.CipherTypeNote
	if len(args) > 0 {
		if t, err := models.ParseCipherType(args[0]); err == nil {
			itemType = t
			args = args[1:]
		}
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: %s", ErrUsage, addItemUsage)
	}

	folderID := args[0]
	if folderID == "-" {
		folderID = ""
	} else {
		f, err := a.folders.Get(ctx, folderID)
		if err != nil {
			return err
		}
		if f == nil {
			return fmt.Errorf("folder %s not found", folderID)
		}
	}

	name, err := a.crypto.Encrypt(ctx, strings.Join(args[1:], " "), nil)
	if err != nil {
		return err
	}
	c, err := a.ciphers.Add(ctx, itemType, name, folderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created item %s\n", c.ID)
	return nil
}

// ListItems prints items grouped by folder in the folder list order.
func (a *App) ListItems(ctx context.Context) error {
	views, err := a.folders.GetAllDecrypted(ctx)
	if err != nil {
		return err
	}
	userID, err := a.users.GetUserID(ctx)
	if err != nil {
		return err
	}
	items, err := a.ciphers.GetAllForUser(ctx, userID)
	if err != nil {
		return err
	}

	byFolder := map[string][]*models.CipherData{}
	for _, c := range items {
		byFolder[c.FolderID] = append(byFolder[c.FolderID], c)
	}

	fallback := a.locale.T(i18n.DecryptErrorKey)
	for _, v := range views {
		group := byFolder[v.ID]
		if len(group) == 0 {
			continue
		}
		slices.SortFunc(group, func(x, y *models.CipherData) int { return strings.Compare(x.ID, y.ID) })

		fmt.Fprintf(a.out, "%s:\n", v.DisplayName(fallback))
		for _, c := range group {
			name, err := a.crypto.Decrypt(ctx, c.Name, nil)
			if err != nil {
				a.logger.Warn(ctx, "item name decryption failed", "item_id", c.ID, "error", err)
				name = fallback
			}
			fmt.Fprintf(a.out, "  %s  %s (%s)\n", c.ID, name, c.Type)
		}
	}
	return nil
}
