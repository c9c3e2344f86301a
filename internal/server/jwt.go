package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/profile-site/internal/config"
	"github.com/jonathan/profile-site/internal/server/middleware"
)

const adminSubject = "admin"

// AdminTokenService exchanges the admin key for signed session tokens.
// It implements middleware.TokenIssuer.
type AdminTokenService struct {
	config config.AdminConfig
	now    func() time.Time
}

var _ middleware.TokenIssuer = (*AdminTokenService)(nil)

// NewAdminTokenService creates a token service for the given admin settings.
func NewAdminTokenService(cfg config.AdminConfig) *AdminTokenService {
	return &AdminTokenService{config: cfg, now: time.Now}
}

// IssueToken returns a session token when key matches the configured admin
// key, and middleware.ErrInvalidKey otherwise.
func (s *AdminTokenService) IssueToken(key string) (string, error) {
	if !s.config.VerifyKey(key) {
		return "", middleware.ErrInvalidKey
	}
	return s.GenerateToken()
}

// GenerateToken signs a new admin session token.
func (s *AdminTokenService) GenerateToken() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL())),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the signature, expiry and subject of a session token.
func (s *AdminTokenService) ValidateToken(tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("token string is empty")
	}
	if !s.config.Enabled() {
		return fmt.Errorf("admin access is not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return fmt.Errorf("invalid token signature: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return fmt.Errorf("malformed token: %w", err)
		}
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("token is not valid")
	}
	if claims.Subject != adminSubject {
		return fmt.Errorf("unexpected token subject %q", claims.Subject)
	}
	return nil
}
