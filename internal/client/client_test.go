package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_AuthConfig(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/config", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"signupAllowed":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	allowed, err := c.AuthConfig(context.Background())
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["password"] != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid credentials"}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-token", Path: "/"})
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	ok, err := c.Login(context.Background(), "admin", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = c.Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestClient_SessionCookieCarriesOver(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-token", Path: "/"})
			w.Write([]byte(`{"ok":true}`))
		case "/api/data":
			cookie, err := r.Cookie("token")
			if err != nil || cookie.Value != "session-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"isProfileComplete":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)
	ctx := context.Background()

	// Before login the data endpoint rejects us.
	_, err = c.GetData(ctx)
	require.Error(t, err)

	ok, err := c.Login(ctx, "admin", "secret1")
	require.NoError(t, err)
	require.True(t, ok)

	doc, err := c.GetData(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"isProfileComplete":true}`, string(doc))
}

func TestClient_GetData_NoContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	doc, err := c.GetData(context.Background())
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestClient_PutData(t *testing.T) {
	t.Parallel()

	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		body := make([]byte, r.ContentLength)
		r.Body.Read(body) //nolint:errcheck
		received = body
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	doc := json.RawMessage(`{"isProfileComplete":false}`)
	require.NoError(t, c.PutData(context.Background(), doc))
	require.JSONEq(t, string(doc), string(received))
}

func TestClient_PutData_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	err = c.PutData(context.Background(), json.RawMessage(`{}`))
	require.Error(t, err)
}
