// Package sampler reduces a time-ordered track to points spaced at least a
// configured interval apart.
package sampler

import (
	"time"

	"github.com/oselednik/trackplace/internal/models"
)

// SelectByInterval returns the subsequence of points whose timestamps are at
// least interval apart. The first point is always selected and anchors the
// comparison; every later point is selected exactly when its timestamp minus
// the timestamp of the most recently selected point is >= interval.
//
// A non-positive interval disables downsampling and the input is returned as
// is. Input points are expected to be ordered by non-decreasing timestamp;
// timestamps are taken at face value and never reordered.
func SelectByInterval(points []models.TrackPoint, interval time.Duration) []models.TrackPoint {
	if len(points) == 0 {
		return nil
	}
	if interval <= 0 {
		return points
	}

	selected := make([]models.TrackPoint, 0, len(points))
	selected = append(selected, points[0])
	marker := points[0].Timestamp

	for _, point := range points[1:] {
		if point.Timestamp.Sub(marker) >= interval {
			selected = append(selected, point)
			marker = point.Timestamp
		}
	}

	return selected
}
