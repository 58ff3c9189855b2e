package config

import (
	"os"
)

type Config struct {
	AppPort string

	RedisAddr     string
	RedisPassword string

	// DatabaseDSN is optional. When set, the user directory is served
	// from Postgres instead of the built-in sample table.
	DatabaseDSN string
}

func Load() Config {

	cfg := Config{

		AppPort: getEnv("APP_PORT", "8001"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}

	return cfg

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
