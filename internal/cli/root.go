// Package cli implements the ignis command line client. Commands edit
// the local state file through the tracker and sync to a remote server
// when a saved session exists.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/ai"
	"github.com/ignishealth/ignis/internal/auth"
	"github.com/ignishealth/ignis/internal/client"
	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/localstore"
	"github.com/ignishealth/ignis/internal/tracker"
)

var (
	serverURL string
	dataPath  string
)

var rootCmd = &cobra.Command{
	Use:   "ignis",
	Short: "ignis tracks nutrition, workouts and body metrics from your terminal",
	Long: "ignis is a local-first health tracker. State lives in a single JSON file;\n" +
		"log in to a sync server to mirror it across devices.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Sync server URL (default $SYNC_SERVER_URL or http://localhost:3000)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the local state file (default $SYNC_LOCAL_STORE or ~/.config/ignis/state.json)")
}

// loadClientConfig reads the sync and AI settings the same way the
// server reads its config: CONFIG_PATH, then ./config.yaml, then env.
func loadClientConfig() (config.ClientConfig, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return config.ClientConfig{}, err
	}
	return *cfg, nil
}

func resolveServerURL(cfg config.ClientConfig) string {
	if serverURL != "" {
		return serverURL
	}
	if cfg.Sync.ServerURL != "" {
		return cfg.Sync.ServerURL
	}
	return "http://localhost:3000"
}

func resolveDataPath(cfg config.ClientConfig) (string, error) {
	if dataPath != "" {
		return dataPath, nil
	}
	if cfg.Sync.LocalStore != "" {
		return cfg.Sync.LocalStore, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "ignis", "state.json"), nil
}

func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// newRemote builds an API client whose cookie jar is seeded with the
// saved session token, so a login survives across invocations.
func newRemote(cfg config.ClientConfig) (*client.Client, *cookiejar.Jar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create cookie jar: %w", err)
	}

	base := resolveServerURL(cfg)
	if token, err := loadSessionToken(cfg); err == nil && token != "" {
		if u, err := url.Parse(base); err == nil {
			jar.SetCookies(u, []*http.Cookie{{Name: auth.CookieName, Value: token}})
		}
	}

	c, err := client.New(base, &http.Client{Jar: jar, Timeout: cfg.Sync.RequestTimeout})
	if err != nil {
		return nil, nil, err
	}
	return c, jar, nil
}

// withTracker opens the local store, connects to the remote when a
// session exists, runs fn, and pushes the result back best-effort.
func withTracker(run func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}

	path, err := resolveDataPath(cfg)
	if err != nil {
		return err
	}

	remote, _, err := newRemote(cfg)
	if err != nil {
		return err
	}

	logger := cliLogger()
	cell, err := localstore.Open(logger, path, domain.DefaultUserData())
	if err != nil {
		return err
	}

	trk := tracker.New(logger, cell, remote, cfg.Sync.Debounce, cfg.Sync.RequestTimeout)
	defer trk.Close()

	// Offline use is normal, a failed pull just means local-only.
	_ = trk.ConnectRemote(ctx)

	if err := run(ctx, cfg, trk); err != nil {
		return err
	}

	if trk.Status() == tracker.StatusAuthenticated {
		if err := trk.SyncNow(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "warning: sync failed, changes are saved locally")
		}
	}
	return nil
}

func newAssistant(cfg config.ClientConfig) *ai.Assistant {
	return ai.NewAssistant(cliLogger(), cfg.AI.APIKey, cfg.AI.Model)
}

func newTranscriber(cfg config.ClientConfig) *ai.Transcriber {
	return ai.NewTranscriber(cliLogger(), cfg.AI.TranscriptionKey, cfg.AI.TranscriptionURL)
}
