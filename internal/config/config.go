package config

import (
	"log"
	"os"
)

type Config struct {
	AppPort    string
	SessionKey string

	PostgresDSN string
	RedisAddr   string

	NewsAPIKey string

	// Cron spec for the feed prewarm job; empty disables it.
	PrewarmCronSpec string
}

func Load() *Config {
	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "5001"),
		SessionKey:      getEnv("SESSION_KEY", "secret123"),
		PostgresDSN:     getEnv("POSTGRES_DSN", "host=localhost user=truebayan password=truebayan dbname=truebayan port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		NewsAPIKey:      getEnv("NEWSAPI_KEY", ""),
		PrewarmCronSpec: getEnv("PREWARM_CRON_SPEC", "*/30 * * * *"),
	}

	log.Printf("config loaded: port=%s prewarm=%s", cfg.AppPort, cfg.PrewarmCronSpec)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
