package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/foldervault/internal/client/client"
	"github.com/dmitrijs2005/foldervault/internal/client/config"
	"github.com/dmitrijs2005/foldervault/internal/client/crypto"
	"github.com/dmitrijs2005/foldervault/internal/client/i18n"
	"github.com/dmitrijs2005/foldervault/internal/client/services"
	"github.com/dmitrijs2005/foldervault/internal/client/storage"
	"github.com/dmitrijs2005/foldervault/internal/filex"
	"github.com/dmitrijs2005/foldervault/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	logger logging.Logger

	db  *sql.DB
	api client.Client

	crypto  crypto.Service
	locale  i18n.Service
	users   services.UserService
	auth    services.AuthService
	folders services.FolderService
	ciphers services.CipherService

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	mode     Mode
	userName string
}

// NewApp opens the local vault and connects to the sync service.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	api.SetTokens(cfg.AccessToken, cfg.RefreshToken)

	app, err := newApp(cfg, db, api, logger)
	if err != nil {
		_ = api.Close()
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.Config, db *sql.DB, api client.Client, logger logging.Logger) (*App, error) {
	locale, err := i18n.NewLocaleService(cfg.Locale)
	if err != nil {
		return nil, err
	}

	store := storage.NewSQLiteService(db)
	cryptoSvc := crypto.NewKeyService()
	users := services.NewUserService(store)
	ciphers := services.NewCipherService(users, store)
	folders := services.NewFolderService(services.FolderServiceDeps{
		Crypto:         cryptoSvc,
		Users:          users,
		API:            api,
		Storage:        store,
		I18n:           locale,
		Ciphers:        ciphers,
		Logger:         logger,
		DecryptWorkers: cfg.DecryptWorkers,
	})

	return &App{
		config:  cfg,
		logger:  logger.With("module", "cli"),
		db:      db,
		api:     api,
		crypto:  cryptoSvc,
		locale:  locale,
		users:   users,
		ciphers: ciphers,
		folders: folders,
		auth:    services.NewAuthService(db, api, cryptoSvc, users, folders, ciphers),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		mode:    ModeOffline,
	}, nil
}

// Close releases the sync connection and the database.
func (a *App) Close() error {
	a.auth.Lock(context.Background())
	return errors.Join(a.api.Close(), a.db.Close())
}

// Run starts the connectivity watcher and the REPL. It returns when the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to foldervault (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isUnlocked() bool {
	return a.auth.IsUnlocked()
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := string(a.mode)
	if a.userName != "" {
		s = a.userName + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// remote bounds a call to the sync service by the configured timeout.
func (a *App) remote(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := a.remote(ctx)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
