package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/ignishealth/ignis/internal/auth"
	"github.com/ignishealth/ignis/pkg/ctxutil"
)

// sessionValidator defines the token validation interface needed by Session.
type sessionValidator interface {
	Validate(token string) (string, error)
}

// Session returns middleware that requires a valid session cookie. A
// missing, malformed, or expired cookie yields 401; on success the account
// username is stashed in the request context.
func Session(validator sessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			username, err := validator.Validate(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := ctxutil.WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"}) //nolint:errcheck
}
