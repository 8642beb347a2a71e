package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.medishare.ma/api")
	t.Setenv("ASSET_BASE_URL", "")
	t.Setenv("STATE_DIR", t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")

	cfg := LoadConfig()

	assert.Equal(t, "https://api.medishare.ma/api", cfg.APIBaseURL)
	assert.Equal(t, cfg.APIBaseURL, cfg.AssetBaseURL, "asset host defaults to the API host")
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.medishare.ma/api")
	t.Setenv("ASSET_BASE_URL", "https://cdn.medishare.ma")
	t.Setenv("STATE_DIR", "/tmp/medishare-test")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "30")

	cfg := LoadConfig()

	assert.Equal(t, "https://cdn.medishare.ma", cfg.AssetBaseURL)
	assert.Equal(t, "/tmp/medishare-test", cfg.StateDir)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.medishare.ma/api")
	t.Setenv("STATE_DIR", t.TempDir())

	for _, bad := range []string{"abc", "-5", "0"} {
		t.Setenv("HTTP_TIMEOUT_SECONDS", bad)
		assert.Equal(t, 10*time.Second, LoadConfig().HTTPTimeout)
	}
}
