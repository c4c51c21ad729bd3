package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = "8080"
	DefaultGeminiModel = "gemini-2.5-flash"
)

type Config struct {
	Port           string
	JWTSecret      string
	GeminiAPIKey   string
	GeminiModel    string
	SeedFile       string        // empty means the built-in catalog
	LoadDelay      time.Duration // artificial pause before the store reports ready
	AllowedOrigins []string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// Load .env locally
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", DefaultPort),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenv("GEMINI_MODEL", DefaultGeminiModel),
		SeedFile:       os.Getenv("SEED_FILE"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "*")),
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("API_KEY")
	}

	if v := os.Getenv("LOAD_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOAD_DELAY %q: %w", v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("LOAD_DELAY must not be negative, got %s", d)
		}
		cfg.LoadDelay = d
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
