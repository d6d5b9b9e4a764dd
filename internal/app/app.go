package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/tweetboard/internal/api"
	"github.com/vovakirdan/tweetboard/internal/config"
	"github.com/vovakirdan/tweetboard/internal/store"
	"github.com/vovakirdan/tweetboard/internal/store/sqlite"
	transporthttp "github.com/vovakirdan/tweetboard/internal/transport/http"
	"github.com/vovakirdan/tweetboard/internal/ui/web"
	"github.com/vovakirdan/tweetboard/internal/view"
)

// App runs one HTTP server until its context is canceled.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	store           store.Store
	log             *zerolog.Logger
}

// NewBackend constructs the development message service.
func NewBackend(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	st, err := sqlite.New(cfg.Backend.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	logger.Info().Str("db_path", cfg.Backend.DatabasePath).Msg("database initialized")

	return &App{
		server:          transporthttp.NewServer(st, cfg.Backend.ServerConfig, logger),
		shutdownTimeout: cfg.Backend.ShutdownTimeout,
		store:           st,
		log:             logger,
	}, nil
}

// NewWeb constructs the web surface. The initial refresh runs before the
// server starts listening.
func NewWeb(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	surface := web.NewSurface()
	ctrl := view.Init(ctx, surface, NewClient(cfg), logger)

	server, err := web.NewServer(ctrl, surface, cfg.Web, logger)
	if err != nil {
		return nil, fmt.Errorf("init web surface: %w", err)
	}

	return &App{
		server:          server,
		shutdownTimeout: cfg.Web.ShutdownTimeout,
		log:             logger,
	}, nil
}

// NewClient builds the API client from configuration.
func NewClient(cfg *config.Config) *api.Client {
	return api.New(cfg.BaseURL, &stdhttp.Client{Timeout: cfg.RequestTimeout})
}

// Addr returns the listen address.
func (a *App) Addr() string {
	return a.server.Addr
}

// Handler exposes the HTTP handler, mainly for tests.
func (a *App) Handler() stdhttp.Handler {
	return a.server.Handler
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes database and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
