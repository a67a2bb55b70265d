package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// LatencyScale multiplies every simulated processing delay. 1.0 keeps the
	// original 800-1500ms per-endpoint latencies; 0 disables them (tests).
	LatencyScale float64
	LogLevel     string
	LogFormat    string
	// CredentialsFile is where the client library persists the signed-in
	// user and token between runs.
	CredentialsFile string
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:            getEnvDefault("PORT", "4000"),
		AllowedOrigin:   getEnvDefault("ALLOWED_ORIGIN", "*"),
		LatencyScale:    getEnvFloatDefault("LATENCY_SCALE", 1.0),
		LogLevel:        getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvDefault("LOG_FORMAT", "console"),
		CredentialsFile: getEnvDefault("CREDENTIALS_FILE", "data/credentials.json"),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloatDefault(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}
