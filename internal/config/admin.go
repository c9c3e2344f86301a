package config

import (
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminConfig guards the editor routes. Access is granted by presenting the
// shared key once, after which a signed session cookie is issued.
type AdminConfig struct {
	Key           string `json:"-" yaml:"-" env:"ADMIN_KEY"`
	KeyHash       string `json:"key_hash,omitempty" yaml:"key_hash,omitempty" env:"ADMIN_KEY_HASH"` // bcrypt; preferred over Key
	TokenSecret   string `json:"-" yaml:"-" env:"ADMIN_TOKEN_SECRET"`
	TokenTTLHours int    `json:"token_ttl_hours,omitempty" yaml:"token_ttl_hours,omitempty" env:"ADMIN_TOKEN_TTL_HOURS"`
	CookieSecure  bool   `json:"cookie_secure,omitempty" yaml:"cookie_secure,omitempty" env:"COOKIE_SECURE"`
}

// Enabled reports whether any admin key is configured. Without one every
// admin route is refused.
func (c *AdminConfig) Enabled() bool {
	return c.Key != "" || c.KeyHash != ""
}

// TokenTTL returns the session lifetime.
func (c *AdminConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// normalize validates the configuration.
func (c *AdminConfig) normalize() error {
	if c.TokenTTLHours < 1 {
		return fmt.Errorf("ADMIN_TOKEN_TTL_HOURS must be at least 1 hour, got: %d", c.TokenTTLHours)
	}
	if c.Enabled() && c.TokenSecret == "" {
		return fmt.Errorf("ADMIN_TOKEN_SECRET is required when an admin key is set")
	}
	if c.Enabled() && len(c.TokenSecret) < 16 {
		return fmt.Errorf("ADMIN_TOKEN_SECRET must be at least 16 characters")
	}
	if c.KeyHash != "" {
		if _, err := bcrypt.Cost([]byte(c.KeyHash)); err != nil {
			return fmt.Errorf("ADMIN_KEY_HASH is not a bcrypt hash: %w", err)
		}
	}
	return nil
}

// VerifyKey checks a presented key against the bcrypt hash when one is
// configured, and against the plain key otherwise.
func (c *AdminConfig) VerifyKey(key string) bool {
	if key == "" {
		return false
	}
	if c.KeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.KeyHash), []byte(key)) == nil
	}
	if c.Key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Key), []byte(key)) == 1
}

// HashKey hashes an admin key for ADMIN_KEY_HASH.
func HashKey(key string, cost int) (string, error) {
	if key == "" {
		return "", fmt.Errorf("admin key is empty")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("bcrypt cost out of range: %d", cost)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin key: %w", err)
	}
	return string(hash), nil
}
