package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://:memory:")
	t.Setenv("JWT_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("ES_URL", "")
	t.Setenv("PASSWORD_HASH_KEY", "")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "")

	cfg := Load()
	assert.Equal(t, "sqlite://:memory:", cfg.DatabaseURL)
	assert.Equal(t, []byte("access"), cfg.PasswordHashKey)
	assert.Equal(t, 10*time.Minute, cfg.AccessTokenTTL)
	assert.False(t, cfg.KafkaEnabled())
	assert.False(t, cfg.SearchEnabled())

	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("ES_URL", "http://es:9200")
	cfg = Load()
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.SearchEnabled())
}
