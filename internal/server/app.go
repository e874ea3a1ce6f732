// Package server initializes and runs the main application server.
// It wires configuration, storage, services and the HTTP transport, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/webauth/internal/logging"
	"github.com/dmitrijs2005/webauth/internal/server/config"
	"github.com/dmitrijs2005/webauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/webauth/internal/server/services"
	"github.com/dmitrijs2005/webauth/internal/server/web"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *web.Server
}

// NewApp builds the application graph. A missing signing secret has
// already failed config loading; a database DSN selects Postgres with
// migrations, an empty one selects the in-memory store.
func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var db *sql.DB
	var rm repomanager.RepositoryManager

	if cfg.DatabaseDSN != "" {
		conn, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}

		pg := repomanager.NewPostgresRepositoryManager()
		if err := pg.RunMigrations(context.Background(), conn); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}

		db = conn
		rm = pg
	} else {
		rm = repomanager.NewInMemoryRepositoryManager()
	}

	sessions := services.NewSessionService(db, rm, cfg)
	contacts := services.NewContactService(db, rm)

	httpServer := web.NewServer(cfg, logger, sessions, contacts)

	return &App{config: cfg, logger: logger, db: db, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}
}
