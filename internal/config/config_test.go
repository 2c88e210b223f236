package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/oselednik/trackplace/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoad(t *testing.T) {
	t.Setenv("TRACKPLACE_ENV", "local")
	t.Setenv("TRACKPLACE_GPX_FILE", "/tracks/morning.gpx")
	t.Setenv("TRACKPLACE_PROVIDER_TYPE", "nominatim")
	t.Setenv("TRACKPLACE_PROVIDER_KEY", "testAPIKey")
	t.Setenv("TRACKPLACE_INTERVAL", "10m")
	t.Setenv("TRACKPLACE_LANGUAGE", "en")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "/tracks/morning.gpx", cfg.InputPath)
	assert.Equal(t, "nominatim", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, "en", cfg.Language)
}

func Test_MustLoadDefaults(t *testing.T) {
	// t.Setenv records the old values for restore, then the variables are
	// unset so the built-in defaults apply.
	for _, key := range []string{
		"TRACKPLACE_ENV", "TRACKPLACE_INTERVAL", "TRACKPLACE_PROVIDER_TYPE", "TRACKPLACE_LANGUAGE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, 5*time.Minute, cfg.Interval)
	assert.Equal(t, "ja", cfg.Language)
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("TRACKPLACE_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}
