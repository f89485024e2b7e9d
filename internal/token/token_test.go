package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amrsalem/go-user-service/internal/config"
)

func newTestService(ttl time.Duration) *Service {
	return NewService(config.JWTConfig{
		SecretKey:        "access-secret-key",
		ExpiresIn:        ttl,
		RefreshSecretKey: "refresh-secret-key",
		RefreshExpiresIn: ttl,
	})
}

func TestGenerateParseRoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)

	signed, err := svc.Generate("user-123", "admin")
	require.NoError(t, err)

	claims, err := svc.Parse(signed)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	signed, err := svc.Generate("user-123", "")
	require.NoError(t, err)

	_, err = svc.Parse(signed)

	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewService(config.JWTConfig{
		SecretKey:        "a-different-secret",
		ExpiresIn:        time.Hour,
		RefreshSecretKey: "another-secret",
		RefreshExpiresIn: time.Hour,
	})

	signed, err := svc.Generate("user-123", "")
	require.NoError(t, err)

	_, err = other.Parse(signed)

	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestParseMalformedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.Parse("definitely.not.a-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}

// Access and refresh tokens are signed with different secrets.
func TestRefreshTokenNotInterchangeable(t *testing.T) {
	svc := newTestService(time.Hour)

	refresh, err := svc.GenerateRefresh("user-123")
	require.NoError(t, err)

	_, err = svc.Parse(refresh)
	require.Error(t, err)

	claims, err := svc.ParseRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}
