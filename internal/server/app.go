// Package server initializes and runs the portal server: it opens the
// database, applies migrations, wires the services and starts the HTTP
// endpoint, shutting everything down on SIGINT/SIGTERM.
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

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dkarlsson/priceportal/internal/logging"
	"github.com/dkarlsson/priceportal/internal/server/auth"
	"github.com/dkarlsson/priceportal/internal/server/config"
	"github.com/dkarlsson/priceportal/internal/server/httpapi"
	"github.com/dkarlsson/priceportal/internal/server/repositories/repomanager"
	"github.com/dkarlsson/priceportal/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.HTTPServer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	verifier, err := newVerifier(cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(db, rm, verifier, cfg, logger)
	cs := services.NewContentService(db, rm)

	srv := httpapi.NewHTTPServer(cfg.EndpointAddr, logger, as, cs, cfg.ClientURL)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func newVerifier(scheme config.VerifierScheme) (auth.Verifier, error) {
	switch scheme {
	case config.VerifierPlain:
		return auth.PlainVerifier{}, nil
	case config.VerifierBcrypt:
		return auth.BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme: %q", scheme)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
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

	if app.config.SecretKey == "" {
		app.logger.Warn(ctx, "no signing secret configured, logins will fail")
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
