package token

import (
	"testing"
	"time"

	"github.com/sanish-bhagat/Health-Sathi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, expiry time.Duration) *Service {
	return NewService(config.TokenConfig{Secret: secret, Expiry: expiry})
}

func TestService_GenerateAndValidate(t *testing.T) {
	svc := newService("unit-secret", time.Hour)

	tokenString, err := svc.Generate("u1", "asha@x.com", "PATIENT")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "asha@x.com", claims.Email)
	assert.Equal(t, "PATIENT", claims.Role)
}

func TestService_Validate_WrongSecret(t *testing.T) {
	tokenString, err := newService("secret-a", time.Hour).Generate("u1", "a@x.com", "PATIENT")
	require.NoError(t, err)

	_, err = newService("secret-b", time.Hour).Validate(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_Expired(t *testing.T) {
	svc := newService("unit-secret", -time.Minute)

	tokenString, err := svc.Generate("u1", "a@x.com", "PATIENT")
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_Garbage(t *testing.T) {
	_, err := newService("unit-secret", time.Hour).Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
