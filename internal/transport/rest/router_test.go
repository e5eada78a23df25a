package rest

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignishealth/ignis/internal/auth"
	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/service/account"
	"github.com/ignishealth/ignis/internal/service/datastore"
)

// newTestServer wires a real account service, session manager, and document
// store against a temp data dir, then serves the full router.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	dataDir := t.TempDir()

	cfg := config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: true,
		},
	}

	accounts := account.NewService(logger, account.NewStore(dataDir, "", ""), bcrypt.MinCost)
	sessions := auth.NewSessionManager(strings.Repeat("s", 32), "ignis", 30*24*time.Hour, false)
	store := datastore.NewStore(logger, dataDir)

	srv := httptest.NewServer(NewRouter(accounts, sessions, store, cfg, logger, "test"))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, true, body["ok"])
	require.Equal(t, "test", body["version"])
}

func TestSignupFlow_FreshServer(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := newClient(t)

	// Fresh server: signup allowed.
	resp, err := client.Get(srv.URL + "/api/auth/config")
	require.NoError(t, err)
	require.Equal(t, true, decodeBody(t, resp)["signupAllowed"])

	// Signup succeeds and sets the session cookie.
	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup",
		map[string]string{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "expected session cookie")
	require.True(t, sessionCookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)
	resp.Body.Close()

	// Signup is now disabled.
	resp, err = client.Get(srv.URL + "/api/auth/config")
	require.NoError(t, err)
	require.Equal(t, false, decodeBody(t, resp)["signupAllowed"])

	// Repeat signup: 409.
	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup",
		map[string]string{"username": "other", "password": "secret2"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestSignup_InvalidInput(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := newClient(t)

	cases := []map[string]string{
		{"username": "ab", "password": "secret1"},
		{"username": "admin", "password": "short"},
		{},
	}
	for _, body := range cases {
		resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %v", body)
		resp.Body.Close()
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := newClient(t)

	// No account yet: 409.
	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login",
		map[string]string{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup",
		map[string]string{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Missing fields: 400.
	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login",
		map[string]string{"username": "admin"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Wrong password and wrong username yield the same message.
	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login",
		map[string]string{"username": "admin", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongPass := decodeBody(t, resp)["error"]

	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login",
		map[string]string{"username": "ghost", "password": "secret1"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, wrongPass, decodeBody(t, resp)["error"])

	// Correct credentials: 200 and cookie.
	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login",
		map[string]string{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestData_RequiresSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := newClient(t)

	resp, err := client.Get(srv.URL + "/api/data")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/data", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestData_PutThenGet_RoundTrip(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup",
		map[string]string{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// No document yet: 204.
	resp, err := client.Get(srv.URL + "/api/data")
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	doc := map[string]any{
		"isProfileComplete": true,
		"inventory":         []any{map[string]any{"id": "1", "name": "Oats", "category": "food"}},
	}
	resp = doJSON(t, client, http.MethodPut, srv.URL+"/api/data", doc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.Get(srv.URL + "/api/data")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, doc, decodeBody(t, resp))
}

func TestData_PutRejectsNonObject(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup",
		map[string]string{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	for _, body := range []string{`[]`, `"text"`, `42`, `not json`} {
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/data", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
		resp.Body.Close()
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup",
		map[string]string{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	require.True(t, cleared, "expected clearing cookie")
	resp.Body.Close()

	// The jar dropped the cookie, so data access is gone.
	resp, err := client.Get(srv.URL + "/api/data")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
