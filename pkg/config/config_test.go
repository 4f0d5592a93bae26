package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a:9092", "b:9092"}, CSV(" a:9092, ,b:9092 "))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("SIMS_TEST_INT", "42")
	assert.Equal(t, 42, EnvIntDefault("SIMS_TEST_INT", 1))

	t.Setenv("SIMS_TEST_INT", "nope")
	assert.Equal(t, 1, EnvIntDefault("SIMS_TEST_INT", 1))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "access")
	t.Setenv("PASSWORD_HASH_KEY", "")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "")
	t.Setenv("REFRESH_TOKEN_TTL_MINUTES", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("ES_INDEX", "")

	cfg := Load()
	assert.Equal(t, []byte("access"), cfg.PasswordHashKey)
	assert.Equal(t, 10*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 48*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, []string{"http://localhost", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "items", cfg.ESIndex)
}

func TestRequireNonEmpty(t *testing.T) {
	require.NoError(t, RequireNonEmpty("x", "X"))
	assert.EqualError(t, RequireNonEmpty("", "DATABASE_URL"), "missing required env DATABASE_URL")
}
