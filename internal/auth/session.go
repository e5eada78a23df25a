package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ignishealth/ignis/internal/domain"
)

// CookieName is the session cookie issued on login and signup.
const CookieName = "token"

// SessionManager issues and validates signed session tokens and builds the
// HTTP cookies that carry them. Tokens are stateless: logout only clears
// the cookie, a leaked token stays valid until expiry.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	secure bool
}

// NewSessionManager creates a session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret, issuer string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		secure: secure,
	}
}

// Issue creates a signed HS256 token with the account username as subject.
func (m *SessionManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and validates a session token, returning the username.
// Any missing, malformed, tampered, or expired token yields ErrUnauthorized.
func (m *SessionManager) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", domain.ErrUnauthorized
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	if claims.Issuer != m.issuer {
		return "", domain.ErrUnauthorized
	}

	return claims.Subject, nil
}

// Cookie wraps a token in the HTTP-only session cookie.
func (m *SessionManager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		MaxAge:   int(m.ttl.Seconds()),
	}
}

// ClearCookie returns a cookie that removes the session from the browser.
func (m *SessionManager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		MaxAge:   -1,
	}
}
