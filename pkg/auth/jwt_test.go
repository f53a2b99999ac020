package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.CreateAccessToken("user-1", "customer", "jo@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "jo@example.com", claims.Email)
}

func TestParseValidate_WrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", time.Hour)
	token, err := tm.CreateAccessToken("user-1", "customer", "jo@example.com")
	require.NoError(t, err)

	other := NewTokenManager("secret-b", time.Hour)
	_, err = other.ParseValidate(token)
	assert.Error(t, err)
}

func TestParseValidate_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)
	token, err := tm.CreateAccessToken("user-1", "customer", "jo@example.com")
	require.NoError(t, err)

	_, err = tm.ParseValidate(token)
	assert.Error(t, err)
}

func TestParseValidate_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	_, err := tm.ParseValidate("not.a.token")
	assert.Error(t, err)
}
