package config

import (
	"errors"
	"os"
)

// Config carries the settings read from the environment at startup.
type Config struct {
	Host         string
	Port         string
	StoragePath  string
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads the process configuration. A missing model API key is a startup
// error; the pipeline cannot run without it.
func Load() (*Config, error) {
	cfg := &Config{
		Host:         getenv("HOST", "0.0.0.0"),
		Port:         getenv("PORT", "5000"),
		StoragePath:  StoragePath(),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),
	}
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}
	return cfg, nil
}

// StoragePath returns the complaints store location. Shared with the admin
// CLI so both binaries read the same file.
func StoragePath() string {
	return getenv("COMPLAINTS_FILE", "data/complaints_store.json")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
