package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oselednik/trackplace/internal/config"
	"github.com/oselednik/trackplace/internal/geocoding"
	"github.com/oselednik/trackplace/internal/gpx"
	"github.com/oselednik/trackplace/internal/metrics"
	"github.com/oselednik/trackplace/internal/output"
	"github.com/oselednik/trackplace/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received,
	// so a long run can be stopped cleanly mid-track.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// The track file may also be given as the first argument, which takes
	// precedence over the environment.
	if len(os.Args) > 1 {
		cfg.InputPath = os.Args[1]
	}
	if cfg.InputPath == "" {
		log.Fatal("No input track file: pass a GPX path as the first argument or set TRACKPLACE_GPX_FILE")
	}

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for run metrics.
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	// Create the reverse-geocoding provider using the factory pattern based on
	// configuration. This allows runtime selection between providers.
	rateLimit := 10
	providerConfig := geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.ProviderType),
		APIKey:    cfg.APIKey,
		RateLimit: rateLimit,
		Language:  cfg.Language,
		Logger:    logger,
	}

	geoProvider, err := geocoding.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.ProviderType)

	pipeline := service.NewPipeline(
		logger,
		gpx.NewLoader(logger),
		geoProvider,
		cfg.ProviderType, // Provider name for metrics
		output.NewWriter(logger),
		appMetrics,
		cfg.Interval,
	)

	summary, err := pipeline.Run(ctx, cfg.InputPath, output.PathFor(cfg.InputPath))
	if err != nil {
		logger.ErrorContext(ctx, "Run failed", "error", err)
		stop()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Run completed",
		"total_points", summary.TotalPoints,
		"sampled_points", summary.SampledPoints,
		"resolved", summary.Resolved,
		"skipped", summary.Skipped,
		"unique_places", summary.UniquePlaces,
		"output", summary.OutputPath,
	)
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
