package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/foldervault/internal/dbx"
	"github.com/dmitrijs2005/foldervault/internal/server/repositories/folders"
	"github.com/dmitrijs2005/foldervault/internal/server/repositories/refreshtokens"
)

// InMemoryRepositoryManager hands out the same process-local repositories
// regardless of the DBTX passed in.
type InMemoryRepositoryManager struct {
	folders       *folders.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		folders:       folders.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Folders(dbx.DBTX) folders.Repository {
	return m.folders
}

func (m *InMemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.refreshTokens
}
