package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir must not be empty")
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in %d..%d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	return nil
}

// Validate performs business-rule validation on the client configuration.
func (c *ClientConfig) Validate() error {
	if c.Sync.Debounce <= 0 {
		return fmt.Errorf("sync.debounce must be positive (got %v)", c.Sync.Debounce)
	}

	if c.Sync.RequestTimeout <= 0 {
		return fmt.Errorf("sync.request_timeout must be positive (got %v)", c.Sync.RequestTimeout)
	}

	return nil
}
