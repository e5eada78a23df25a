package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ignishealth/ignis/pkg/atomicfile"
)

// Credentials is the single stored credential for a deployment.
type Credentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Source identifies where a credential was resolved from.
type Source string

const (
	SourceFile Source = "file"
	SourceEnv  Source = "env"
)

// Store resolves and persists the deployment credential. A credential file
// on disk takes precedence over the env-configured fallback pair; when
// neither exists, self-service signup is allowed.
type Store struct {
	path        string
	envUsername string
	envHash     string
}

// NewStore creates a credential store rooted in dataDir. envUsername and
// envHash configure the env-sourced fallback; an empty envHash disables it.
func NewStore(dataDir, envUsername, envHash string) *Store {
	return &Store{
		path:        filepath.Join(dataDir, "auth.json"),
		envUsername: envUsername,
		envHash:     envHash,
	}
}

// Load resolves the current credential, or returns (nil, "", nil) when no
// credential is configured. A corrupt or incomplete credential file is
// ignored rather than locking the user out of the env fallback.
func (s *Store) Load() (*Credentials, Source, error) {
	raw, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		var creds Credentials
		if jsonErr := json.Unmarshal(raw, &creds); jsonErr == nil &&
			creds.Username != "" && creds.PasswordHash != "" {
			return &creds, SourceFile, nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, "", fmt.Errorf("read credential file: %w", err)
	}

	if s.envHash != "" {
		return &Credentials{Username: s.envUsername, PasswordHash: s.envHash}, SourceEnv, nil
	}

	return nil, "", nil
}

// Save persists the credential file via temp-file + atomic rename.
func (s *Store) Save(creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := atomicfile.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}
