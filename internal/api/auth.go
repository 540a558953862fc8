package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/milanbojovic/OrderOook/pkg/errors"
)

// TokenManager issues and validates the bearer tokens handed out at login.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager signing with HS512.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken returns a signed token for the given username.
func (m *TokenManager) GenerateToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.NewTracer("sign token").Wrap(err)
	}
	return token, nil
}

// ValidateToken verifies signature and expiry and returns the username.
func (m *TokenManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewTracer("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", errors.NewTracer("invalid token").Wrap(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.NewTracer("invalid token claims")
	}
	return claims.Subject, nil
}
