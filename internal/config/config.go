package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	AssetBaseURL string
	StateDir     string
	AppEnv       string
	HTTPTimeout  time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:   os.Getenv("API_BASE_URL"),
		AssetBaseURL: os.Getenv("ASSET_BASE_URL"),
		StateDir:     os.Getenv("STATE_DIR"),
		AppEnv:       os.Getenv("APP_ENV"),
		HTTPTimeout:  10 * time.Second,
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("Environment variables not loaded properly: API_BASE_URL is required")
	}

	// Image paths returned by the API are relative; they are resolved
	// against the asset host, which defaults to the API host.
	if cfg.AssetBaseURL == "" {
		cfg.AssetBaseURL = cfg.APIBaseURL
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Cannot resolve home directory for state storage")
		}
		cfg.StateDir = filepath.Join(home, ".medishare")
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}
