package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	LogLevel       string
	AllowedOrigins []string
}

// Load reads configuration from the environment, with a best-effort
// .env file for local development. Missing values fall back to
// defaults; AllowedOrigins empty means same-origin only.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:     "8080",
		LogLevel: "info",
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg
}
