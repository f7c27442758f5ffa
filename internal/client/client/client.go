package client

import (
	"context"

	"github.com/dmitrijs2005/foldervault/internal/client/models"
)

// Client is the remote side of folder synchronization.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	CreateFolder(ctx context.Context, req models.FolderRequest) (*models.FolderResponse, error)
	UpdateFolder(ctx context.Context, id string, req models.FolderRequest) (*models.FolderResponse, error)
	DeleteFolder(ctx context.Context, id string) error
	ListFolders(ctx context.Context) ([]*models.FolderResponse, error)
}
