// Package middleware provides HTTP middleware for the admin gate.
package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// AdminCookieName is the session cookie issued after a successful key check.
const AdminCookieName = "ADMIN_AUTH_TOKEN"

// ErrInvalidKey is returned by a TokenIssuer for a wrong admin key.
var ErrInvalidKey = errors.New("invalid admin key")

// TokenIssuer exchanges the admin key for session tokens and validates them.
// This allows the middleware to work with any token implementation.
type TokenIssuer interface {
	IssueToken(key string) (string, error)
	ValidateToken(token string) error
}

// CookieOptions controls the session cookie.
type CookieOptions struct {
	Secure bool
	TTL    time.Duration
}

// AdminAuth lets a request through when it carries a valid session cookie.
// Otherwise a `key` query parameter is exchanged for a new session cookie and
// the request proceeds; anything else is answered with 401.
func AdminAuth(issuer TokenIssuer, opts CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(AdminCookieName); err == nil && c.Value != "" {
				if issuer.ValidateToken(c.Value) == nil {
					next.ServeHTTP(w, r)
					return
				}
			}

			key := r.URL.Query().Get("key")
			if key == "" {
				unauthorized(w)
				return
			}
			token, err := issuer.IssueToken(key)
			if err != nil {
				unauthorized(w)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     AdminCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(opts.TTL.Seconds()),
				HttpOnly: true,
				Secure:   opts.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
