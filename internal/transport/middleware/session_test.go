package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ignishealth/ignis/internal/auth"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/pkg/ctxutil"
)

type sessionValidatorMock struct {
	username string
	err      error
}

func (m *sessionValidatorMock) Validate(token string) (string, error) {
	return m.username, m.err
}

func TestSession_MissingCookie(t *testing.T) {
	t.Parallel()

	handler := Session(&sessionValidatorMock{username: "admin"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_InvalidToken(t *testing.T) {
	t.Parallel()

	handler := Session(&sessionValidatorMock{err: domain.ErrUnauthorized})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_ValidToken(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Session(&sessionValidatorMock{username: "admin"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ctxutil.UsernameFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen != "admin" {
		t.Errorf("expected username in context, got %q", seen)
	}
}
