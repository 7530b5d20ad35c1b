package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	NatsURL        string
	NatsToken      string
	DatabaseURL    string
	LogLevel       string
	APIToken       string
	LifelogDir     string
	ResponseWindow time.Duration
}

// Load reads configuration from the environment. A .env.local file
// takes precedence over .env; both are optional overlays under the
// real environment.
func Load() Config {
	godotenv.Load(".env.local")
	godotenv.Load(".env")

	return Config{
		Port:           envInt("WRATH_PORT", 8460),
		NatsURL:        envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:      envStr("NATS_TOKEN", ""),
		DatabaseURL:    envStr("DATABASE_URL", ""),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		APIToken:       envStr("WRATH_API_TOKEN", ""),
		LifelogDir:     envStr("LIFELOG_DIR", ""),
		ResponseWindow: time.Duration(envInt("RESPONSE_WINDOW_MINUTES", 5)) * time.Minute,
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
