package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("test-jwt-secret")
	refreshSecret = []byte("test-refresh-secret")
)

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(10 * time.Minute).UTC()
	token, err := NewAccessToken("user@example.com", exp, accessSecret)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, accessSecret)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, TypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(48 * time.Hour).UTC()
	token, err := NewRefreshToken("user@example.com", exp, refreshSecret)
	require.NoError(t, err)

	claims, err := RefreshClaimsFromToken(token, refreshSecret)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, TypeRefresh, claims.Type)
}

func TestAccessClaimsFromToken_Rejects(t *testing.T) {
	t.Parallel()

	expired, err := NewAccessToken("a@b.c", time.Now().Add(-time.Minute), accessSecret)
	require.NoError(t, err)
	valid, err := NewAccessToken("a@b.c", time.Now().Add(time.Minute), accessSecret)
	require.NoError(t, err)
	refresh, err := NewRefreshToken("a@b.c", time.Now().Add(time.Minute), accessSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(expired, accessSecret)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	_, err = AccessClaimsFromToken(valid, refreshSecret)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))

	_, err = AccessClaimsFromToken(refresh, accessSecret)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = AccessClaimsFromToken("not-a-jwt", accessSecret)
	assert.Error(t, err)
}

func TestTokensAreDistinct(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Minute)
	a, err := NewAccessToken("a@b.c", exp, accessSecret)
	require.NoError(t, err)
	b, err := NewAccessToken("a@b.c", exp, accessSecret)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
