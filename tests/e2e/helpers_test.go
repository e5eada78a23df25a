//go:build e2e

package e2e_test

import (
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ignishealth/ignis/internal/auth"
	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/service/account"
	"github.com/ignishealth/ignis/internal/service/datastore"
	"github.com/ignishealth/ignis/internal/transport/rest"
)

// setupTestServer boots the full HTTP stack against a throwaway data
// directory and returns its base URL.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dataDir := t.TempDir()
	cfg := config.Config{}
	cfg.Server.MaxBodyBytes = 2 << 20
	cfg.CORS.AllowedOrigins = "*"
	cfg.CORS.AllowedMethods = "GET,POST,PUT,DELETE,OPTIONS"
	cfg.CORS.AllowedHeaders = "Content-Type"

	logger := slog.New(slog.DiscardHandler)

	sessions := auth.NewSessionManager("e2e-secret-at-least-32-characters!!", "ignis", time.Hour, false)
	accounts := account.NewService(logger, account.NewStore(dataDir, "", ""), 4)
	store := datastore.NewStore(logger, dataDir)

	srv := httptest.NewServer(rest.NewRouter(accounts, sessions, store, cfg, logger, "e2e"))
	t.Cleanup(srv.Close)
	return srv
}
