// Package services implements the business logic of the sync server on top
// of the repositories vended by repomanager.
package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/foldervault/internal/dbx"
)

// withTx runs fn in a transaction on db. Without a database (in-memory
// repositories) fn runs directly with a nil DBTX.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, db, nil, fn)
}
