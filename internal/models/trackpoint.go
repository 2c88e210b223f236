package models

import "time"

// TrackPoint represents a single recorded position from a GPS track,
// defined by its coordinates and the moment it was recorded.
type TrackPoint struct {
	Latitude  float64   `json:"latitude"`  // Latitude of the point, in degrees.
	Longitude float64   `json:"longitude"` // Longitude of the point, in degrees.
	Timestamp time.Time `json:"timestamp"` // Timestamp is the absolute time the point was recorded.
}
