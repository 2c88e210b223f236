// Package gpx loads track points from GPX files.
package gpx

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/oselednik/trackplace/internal/models"
	"github.com/tkrajina/gpxgo/gpx"
)

// Loader reads GPX files from disk and flattens them into a single ordered
// sequence of track points.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a new GPX loader with the provided logger.
func NewLoader(log *slog.Logger) *Loader {
	return &Loader{log: log}
}

// Load parses the GPX file at path and returns its track points from all
// tracks and segments, sorted by ascending timestamp. Points without a
// timestamp are dropped, since the sampler cannot place them on the timeline.
func (l *Loader) Load(path string) ([]models.TrackPoint, error) {
	data, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX file %q: %w", path, err)
	}

	var points []models.TrackPoint
	skipped := 0
	for _, track := range data.Tracks {
		for _, segment := range track.Segments {
			for _, point := range segment.Points {
				if point.Timestamp.IsZero() {
					skipped++
					continue
				}
				points = append(points, models.TrackPoint{
					Latitude:  point.Latitude,
					Longitude: point.Longitude,
					Timestamp: point.Timestamp,
				})
			}
		}
	}

	if skipped > 0 {
		l.log.Warn("Dropped GPX points without timestamps", "count", skipped, "file", path)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	return points, nil
}
