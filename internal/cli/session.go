package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/pkg/atomicfile"
)

// The session token is kept next to the state file so `ignis login`
// survives across invocations.
func sessionTokenPath(cfg config.ClientConfig) (string, error) {
	path, err := resolveDataPath(cfg)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "session"), nil
}

func loadSessionToken(cfg config.ClientConfig) (string, error) {
	path, err := sessionTokenPath(cfg)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func saveSessionToken(cfg config.ClientConfig, token string) error {
	path, err := sessionTokenPath(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	return atomicfile.WriteFile(path, []byte(token), 0o600)
}

func clearSessionToken(cfg config.ClientConfig) error {
	path, err := sessionTokenPath(cfg)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
