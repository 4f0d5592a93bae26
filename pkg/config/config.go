package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName string

	ServerPort int

	DatabaseURL string

	JWTAccessSecret  []byte
	JWTRefreshSecret []byte
	PasswordHashKey  []byte

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CORSOrigins []string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	LogLevel string
}

func Load() Config {
	access := []byte(os.Getenv("JWT_SECRET"))

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "sims"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTAccessSecret:  access,
		JWTRefreshSecret: []byte(os.Getenv("JWT_REFRESH_SECRET")),
		PasswordHashKey:  []byte(EnvDefault("PASSWORD_HASH_KEY", string(access))),

		AccessTokenTTL:  time.Duration(EnvIntDefault("ACCESS_TOKEN_TTL_MINUTES", 10)) * time.Minute,
		RefreshTokenTTL: time.Duration(EnvIntDefault("REFRESH_TOKEN_TTL_MINUTES", 60*24*2)) * time.Minute,

		CORSOrigins: CSV(EnvDefault("CORS_ORIGINS", "http://localhost,http://localhost:3000")),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "items"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
