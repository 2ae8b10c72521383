// Package server wires the report server: it opens the journal store,
// handles shutdown signals and runs the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/repositories/repomanager"
	"github.com/itnewcomer/Memento/internal/server/auth"
	"github.com/itnewcomer/Memento/internal/server/config"
	"github.com/itnewcomer/Memento/internal/services"

	gs "github.com/itnewcomer/Memento/internal/server/grpc"
)

// TokenSubject is the subject of tokens printed by IssueToken.
const TokenSubject = "memento"

type App struct {
	config  *config.Config
	db      *sql.DB
	logger  logging.Logger
	journal *services.JournalService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.New(os.Stdout, c.LogLevel, "json"))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "token secret is the built-in default; anyone can mint access tokens, set -s or MEMENTO_SERVER_SECRET_KEY")
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	js := services.NewJournalService(db, rm, logger)

	return &App{config: c, db: db, logger: logger, journal: js}, nil
}

// Close releases the journal store.
func (app *App) Close() error {
	return app.db.Close()
}

// IssueToken writes a signed access token for the report endpoint to w.
func (app *App) IssueToken(w io.Writer) error {
	tok, err := auth.GenerateToken(TokenSubject, []byte(app.config.SecretKey), app.config.TokenValidityDuration)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tok)
	return err
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.journal, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddrGRPC)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
