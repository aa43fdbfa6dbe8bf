// Package server initializes and runs the dev server: it seeds the
// in-memory store, wires the HTTP API and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobboardhq/backoffice/internal/logging"
	"github.com/jobboardhq/backoffice/internal/server/config"
	"github.com/jobboardhq/backoffice/internal/server/httpapi"
	"github.com/jobboardhq/backoffice/internal/server/store"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(c.LogLevel))

	st := store.New()
	if err := st.Seed(c.SeedPassword); err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}

	handler := httpapi.NewHandler(st, []byte(c.SecretKey), c.TokenValidityDuration, logger)

	return &App{
		config: c,
		logger: logger,
		server: &http.Server{
			Addr:    c.EndpointAddr,
			Handler: handler.Router(),
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is cancelled or a termination signal
// arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "dev server listening", "addr", app.config.EndpointAddr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	return app.server.Shutdown(shutdownCtx)
}
