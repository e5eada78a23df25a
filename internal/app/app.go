package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ignishealth/ignis/internal/auth"
	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/service/account"
	"github.com/ignishealth/ignis/internal/service/datastore"
	"github.com/ignishealth/ignis/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// account and data services onto the router, and serves until SIGINT or
// SIGTERM, then drains within the shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.Int("port", cfg.Server.Port),
		slog.String("data_dir", cfg.Storage.DataDir),
	)

	sessions := auth.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL, cfg.Auth.CookieSecure)
	accounts := account.NewService(
		logger,
		account.NewStore(cfg.Storage.DataDir, cfg.Auth.FallbackUsername, cfg.Auth.FallbackPasswordHash),
		cfg.Auth.PasswordHashCost,
	)
	store := datastore.NewStore(logger, cfg.Storage.DataDir)

	handler := rest.NewRouter(accounts, sessions, store, *cfg, logger, BuildVersion())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
