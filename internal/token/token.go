// Package token signs and verifies the service's JWT tokens. Verification
// failures are returned as the token library's own errors so the central
// error pipeline can classify expired and malformed tokens separately.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amrsalem/go-user-service/internal/config"
)

// Claims are the claims carried by access and refresh tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
}

// Service signs and parses tokens with the configured secrets and TTLs.
type Service struct {
	secret        []byte
	refreshSecret []byte
	ttl           time.Duration
	refreshTTL    time.Duration
}

// NewService creates a token service from config.
func NewService(cfg config.JWTConfig) *Service {
	return &Service{
		secret:        []byte(cfg.SecretKey),
		refreshSecret: []byte(cfg.RefreshSecretKey),
		ttl:           cfg.ExpiresIn,
		refreshTTL:    cfg.RefreshExpiresIn,
	}
}

// Generate signs an access token for the given user.
func (s *Service) Generate(userID, role string) (string, error) {
	return sign(s.secret, userID, role, s.ttl)
}

// GenerateRefresh signs a refresh token for the given user.
func (s *Service) GenerateRefresh(userID string) (string, error) {
	return sign(s.refreshSecret, userID, "", s.refreshTTL)
}

// Parse verifies an access token and returns its claims. The underlying
// jwt error is preserved in the chain for classification.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	return parse(s.secret, tokenString)
}

// ParseRefresh verifies a refresh token and returns its claims.
func (s *Service) ParseRefresh(tokenString string) (*Claims, error) {
	return parse(s.refreshSecret, tokenString)
}

func sign(secret []byte, userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Role:   role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func parse(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
