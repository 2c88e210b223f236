package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for a trackplace run.
// It includes the environment, the input track file, the geocoding provider
// selection and credential, and the sampling interval.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - InputPath: The path to the GPX track file to process.
// - ProviderType: The type of reverse-geocoding provider to use (google, nominatim).
// - APIKey: The API key for accessing external services (required for Google).
// - Interval: The minimum elapsed time between sampled track points.
// - Language: The preferred language for resolved place names.
type Config struct {
	Env          string        // Env is the current environment: local, dev, prod.
	InputPath    string        // InputPath is the GPX track file to process.
	ProviderType string        // ProviderType specifies which reverse-geocoding provider to use.
	APIKey       string        // The API key for accessing external services.
	Interval     time.Duration // The minimum elapsed time between sampled points.
	Language     string        // The preferred language for resolved place names.
}

// MustLoad loads the configuration from the environment and returns a Config
// struct. It panics when a value is present but cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(setDefaultEnv("TRACKPLACE_INTERVAL", "5m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	return &Config{
		Env:          setDefaultEnv("TRACKPLACE_ENV", "production"),
		InputPath:    os.Getenv("TRACKPLACE_GPX_FILE"),
		ProviderType: setDefaultEnv("TRACKPLACE_PROVIDER_TYPE", "google"),
		APIKey:       os.Getenv("TRACKPLACE_PROVIDER_KEY"),
		Interval:     interval,
		Language:     setDefaultEnv("TRACKPLACE_LANGUAGE", "ja"),
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
