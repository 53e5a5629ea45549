package auth

import (
	"testing"
	"time"

	"github.com/goldworks/terminal/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-chars!!",
		TokenExpiration: expiration,
		Issuer:          "gold-terminal",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresAt, err := svc.GenerateToken("terminal-01", "maria")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "terminal-01", claims.TerminalID)
	assert.Equal(t, "maria", claims.Operator)
	assert.Equal(t, "gold-terminal", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(config.JWTConfig{
		Secret:          "a-completely-different-secret-key!!!",
		TokenExpiration: time.Hour,
		Issuer:          "gold-terminal",
	})

	token, _, err := other.GenerateToken("terminal-01", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken("terminal-01", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	other := NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-chars!!",
		TokenExpiration: time.Hour,
		Issuer:          "someone-else",
	})
	svc := newTestService(time.Hour)

	token, _, err := other.GenerateToken("terminal-01", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
