// Package service wires the track loader, sampler, geocoding provider and
// result writer into a single run-once pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oselednik/trackplace/internal/geocoding"
	"github.com/oselednik/trackplace/internal/metrics"
	"github.com/oselednik/trackplace/internal/models"
	"github.com/oselednik/trackplace/internal/sampler"
)

// TrackLoader reads an ordered sequence of track points from a file.
type TrackLoader interface {
	Load(path string) ([]models.TrackPoint, error)
}

// ResultWriter persists the collected geocoding results.
type ResultWriter interface {
	Write(path string, results []models.GeocodeResult) error
}

// Summary describes what a completed pipeline run did.
type Summary struct {
	TotalPoints   int    // TotalPoints is the number of points parsed from the track file.
	SampledPoints int    // SampledPoints is the number of points selected for geocoding.
	Resolved      int    // Resolved is the number of points with place information.
	Skipped       int    // Skipped is the number of points the provider found no place for.
	UniquePlaces  int    // UniquePlaces is the number of distinct places among the results.
	OutputPath    string // OutputPath is where the results were written.
}

// Pipeline runs the parse, sample, geocode and serialize steps for one track
// file. Geocoding lookups are issued strictly one after another in
// sampled-point order.
type Pipeline struct {
	log          *slog.Logger       // Logger for pipeline activities
	loader       TrackLoader        // Loader for reading the track file
	provider     geocoding.Provider // Reverse-geocoding provider for sampled points
	providerName string             // Name of the provider for metrics labeling
	writer       ResultWriter       // Writer for the final result set
	metrics      *metrics.Metrics   // Metrics for tracking pipeline progress
	interval     time.Duration      // Minimum elapsed time between sampled points
}

// NewPipeline creates a new Pipeline instance. It takes a logger, a track
// loader, a reverse-geocoding provider, the provider name for metrics
// labeling, a result writer, metrics, and the sampling interval.
func NewPipeline(
	log *slog.Logger,
	loader TrackLoader,
	provider geocoding.Provider,
	providerName string,
	writer ResultWriter,
	metrics *metrics.Metrics,
	interval time.Duration,
) *Pipeline {
	return &Pipeline{
		log:          log,
		loader:       loader,
		provider:     provider,
		providerName: providerName,
		writer:       writer,
		metrics:      metrics,
		interval:     interval,
	}
}

// Run executes the pipeline for the track file at inputPath and writes the
// result set to outputPath. A provider failure aborts the run and no output
// file is written; a coordinate the provider finds no place for is skipped
// with a warning. Returns a summary of the run on success.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputPath string) (*Summary, error) {
	points, err := p.loader.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load track: %w", err)
	}
	p.log.InfoContext(ctx, "Track loaded", "file", inputPath, "points", len(points))

	selected := sampler.SelectByInterval(points, p.interval)
	p.metrics.PointsSampled.Add(float64(len(selected)))
	p.log.InfoContext(ctx, "Points selected for geocoding", "selected", len(selected), "interval", p.interval)

	results, skipped, err := p.geocodeAll(ctx, selected)
	if err != nil {
		return nil, err
	}

	if err = p.writer.Write(outputPath, results); err != nil {
		return nil, fmt.Errorf("failed to write results: %w", err)
	}
	p.log.InfoContext(ctx, "Results written", "file", outputPath, "results", len(results))

	return &Summary{
		TotalPoints:   len(points),
		SampledPoints: len(selected),
		Resolved:      len(results),
		Skipped:       skipped,
		UniquePlaces:  countUniquePlaces(results),
		OutputPath:    outputPath,
	}, nil
}

// geocodeAll issues one blocking lookup per selected point, in order. It
// stops at the first provider failure; ErrNoResult only skips the point.
func (p *Pipeline) geocodeAll(ctx context.Context, selected []models.TrackPoint) ([]models.GeocodeResult, int, error) {
	results := make([]models.GeocodeResult, 0, len(selected))
	skipped := 0

	for _, point := range selected {
		startTime := time.Now()
		place, err := p.provider.ReverseGeocode(ctx, point.Latitude, point.Longitude)
		duration := time.Since(startTime).Seconds()
		p.metrics.RequestSeconds.WithLabelValues(p.providerName).Observe(duration)

		if err != nil {
			if errors.Is(err, geocoding.ErrNoResult) {
				p.log.WarnContext(ctx, "No place found for point, skipping",
					"lat", point.Latitude, "lon", point.Longitude, "time", point.Timestamp)
				p.metrics.Lookups.WithLabelValues("no_result").Inc()
				skipped++
				continue
			}

			p.metrics.Lookups.WithLabelValues("failure").Inc()
			p.metrics.APIErrors.Inc()
			return nil, 0, fmt.Errorf("failed to geocode point at %s: %w", point.Timestamp.Format(time.RFC3339), err)
		}

		p.metrics.Lookups.WithLabelValues("success").Inc()
		results = append(results, models.GeocodeResult{Point: point, Place: *place})
	}

	return results, skipped, nil
}

// countUniquePlaces counts distinct resolved places, matching how repeated
// addresses along a slow-moving track collapse into one place of interest.
func countUniquePlaces(results []models.GeocodeResult) int {
	seen := make(map[string]struct{}, len(results))
	for _, result := range results {
		seen[result.Place.Key()] = struct{}{}
	}
	return len(seen)
}
