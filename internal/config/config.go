package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// StoreBackend selects where portal records live:
	// "postgres" (default) or "memory" (local demo, no infra).
	StoreBackend string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// GeminiAPIKey enables best-effort announcement summaries.
	// Empty disables the summarizer.
	GeminiAPIKey string
}

func Load() Config {

	// .env is a local-dev convenience; absence is not an error
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		StoreBackend: getenv("PORTAL_STORE", "postgres"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
