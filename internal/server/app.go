// Package server wires the sync server: storage backend, services and the
// gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foldervault/internal/logging"
	"github.com/dmitrijs2005/foldervault/internal/server/config"
	"github.com/dmitrijs2005/foldervault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/foldervault/internal/server/services"

	gs "github.com/dmitrijs2005/foldervault/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	userService   *services.UserService
	folderService *services.FolderService
}

// NewApp opens the configured backend. An empty DatabaseDSN keeps all data
// in memory; otherwise PostgreSQL is opened and migrated.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db *sql.DB
		m  repomanager.RepositoryManager
	)

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database configured, data is kept in memory")
		m = repomanager.NewInMemoryRepositoryManager()
	} else {
		var err error
		db, err = repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		m = repomanager.NewPostgresRepositoryManager()
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db migration error: %w", err)
		}
	}

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		userService:   services.NewUserService(db, m, c),
		folderService: services.NewFolderService(db, m),
	}, nil
}

// Run serves gRPC until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")
	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.userService, app.folderService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		return err
	}
	return nil
}

// IssueTokens creates a token pair for userID, used to provision clients.
func (app *App) IssueTokens(ctx context.Context, userID string) (*services.TokenPair, error) {
	return app.userService.IssueTokens(ctx, userID)
}

func (app *App) Close() error {
	if app.db == nil {
		return nil
	}
	return app.db.Close()
}
