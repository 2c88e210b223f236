package models

// GeocodeResult pairs a sampled track point with the place information the
// geocoding provider resolved for it. Results are collected in sampled-point
// order, so a slice of GeocodeResult is ordered by ascending timestamp.
type GeocodeResult struct {
	Point TrackPoint `json:"point"` // Point is the sampled track point that was looked up.
	Place Place      `json:"place"` // Place is the resolved place information for the point.
}
