// internal/app/system/token/token.go

// Package token issues and verifies the HS256 bearer tokens returned by
// login. Verification failures are deliberately opaque: callers treat a bad
// token the same as a missing one and fall through to weaker credentials.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is used when the configured TTL is zero.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken covers every parse, signature, and claim failure.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in a signed token.
type Claims struct {
	Email string
	Role  string
}

// Service signs and verifies tokens with a single shared HS256 secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a token Service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Sign creates a signed token embedding the email (sub) and role, with
// standard iat/exp claims and a random jti.
func (s *Service) Sign(email, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the embedded
// claims. Any failure, including an unexpected signing method, an expired
// token, or a missing subject, returns ErrInvalidToken.
func (s *Service) Verify(tokenStr string) (Claims, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mc["sub"].(string)
	if email == "" {
		return Claims{}, ErrInvalidToken
	}
	role, _ := mc["role"].(string)
	return Claims{Email: email, Role: role}, nil
}
