// Package repomanager vends the repositories of the sync server for a given
// connection or transaction, hiding which backend stores them.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/foldervault/internal/dbx"
	"github.com/dmitrijs2005/foldervault/internal/server/repositories/folders"
	"github.com/dmitrijs2005/foldervault/internal/server/repositories/refreshtokens"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Folders(db dbx.DBTX) folders.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
