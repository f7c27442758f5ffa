// Package folders declares the server-side folder repository and its
// PostgreSQL and in-memory implementations.
package folders

import (
	"context"

	"github.com/dmitrijs2005/foldervault/internal/server/models"
)

// Repository stores folders per user.
type Repository interface {
	// Create inserts f. f.ID must already be assigned.
	Create(ctx context.Context, f *models.Folder) error

	// Update replaces name and revision date of the folder identified by
	// f.ID and f.UserID, returning common.ErrorNotFound if there is none.
	Update(ctx context.Context, f *models.Folder) error

	// Delete removes the folder, returning common.ErrorNotFound if the user
	// owns no folder with that id.
	Delete(ctx context.Context, userID, id string) error

	// ListByUser returns the user's folders ordered by id.
	ListByUser(ctx context.Context, userID string) ([]*models.Folder, error)
}
