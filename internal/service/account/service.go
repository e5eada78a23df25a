// Package account gates data access behind the deployment's single stored
// credential, with self-service signup permitted only while no credential
// exists yet.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignishealth/ignis/internal/domain"
)

// credStore defines the credential persistence interface needed by Service.
type credStore interface {
	Load() (*Credentials, Source, error)
	Save(creds Credentials) error
}

// Service implements signup and login over the credential store.
type Service struct {
	log      *slog.Logger
	store    credStore
	hashCost int
}

// NewService creates an account service.
func NewService(logger *slog.Logger, store credStore, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		store:    store,
		hashCost: hashCost,
	}
}

// SignupAllowed reports whether self-service signup is currently permitted,
// which is the case only while no credential resolves from file or env.
func (s *Service) SignupAllowed(ctx context.Context) (bool, error) {
	creds, _, err := s.store.Load()
	if err != nil {
		return false, fmt.Errorf("account.SignupAllowed: %w", err)
	}
	return creds == nil, nil
}

// Signup creates the deployment credential and returns the username.
// Returns ErrConflict once any credential exists.
func (s *Service) Signup(ctx context.Context, input SignupInput) (string, error) {
	existing, _, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("account.Signup: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("account.Signup: signup disabled: %w", domain.ErrConflict)
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("account.Signup hash password: %w", err)
	}

	if err := s.store.Save(Credentials{Username: input.Username, PasswordHash: string(hash)}); err != nil {
		return "", fmt.Errorf("account.Signup: %w", err)
	}

	s.log.InfoContext(ctx, "account created", slog.String("username", input.Username))

	return input.Username, nil
}

// Login verifies the supplied credentials and returns the username.
// Returns ErrNoAccount when no credential is configured and ErrUnauthorized
// on any username or password mismatch; the transport layer reports both
// mismatches with one constant message so usernames cannot be enumerated.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	creds, source, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("account.Login: %w", err)
	}
	if creds == nil {
		return "", domain.ErrNoAccount
	}

	if input.Username != creds.Username {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(input.Password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "login succeeded",
		slog.String("username", creds.Username),
		slog.String("credential_source", string(source)),
	)

	return creds.Username, nil
}
