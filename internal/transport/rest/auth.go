package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/service/account"
)

// invalidCredentials is the constant message for every login mismatch so
// response content never reveals whether the username exists.
const invalidCredentials = "Invalid credentials"

// accountService defines the minimal interface needed by AuthHandler.
type accountService interface {
	SignupAllowed(ctx context.Context) (bool, error)
	Signup(ctx context.Context, input account.SignupInput) (string, error)
	Login(ctx context.Context, input account.LoginInput) (string, error)
}

// sessionIssuer defines the session management interface needed by AuthHandler.
type sessionIssuer interface {
	Issue(username string) (string, error)
	Cookie(token string) *http.Cookie
	ClearCookie() *http.Cookie
}

// AuthHandler serves the auth REST endpoints.
type AuthHandler struct {
	svc      accountService
	sessions sessionIssuer
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc accountService, sessions sessionIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions, log: logger.With("handler", "auth")}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authConfigResponse struct {
	SignupAllowed bool `json:"signupAllowed"`
}

// Config handles GET /api/auth/config.
func (h *AuthHandler) Config(w http.ResponseWriter, r *http.Request) {
	allowed, err := h.svc.SignupAllowed(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authConfigResponse{SignupAllowed: allowed})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username, err := h.svc.Login(r.Context(), account.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoAccount):
			writeError(w, http.StatusConflict, "No account configured. Sign up first.")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, invalidCredentials)
		default:
			h.handleError(w, r, err)
		}
		return
	}

	h.issueSession(w, r, username)
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username, err := h.svc.Signup(r.Context(), account.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "Signup disabled; account already exists.")
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.issueSession(w, r, username)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout
// only clears the cookie; the token itself stays valid until expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.ClearCookie())
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, username string) {
	token, err := h.sessions.Issue(username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	http.SetCookie(w, h.sessions.Cookie(token))
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
