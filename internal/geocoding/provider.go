package geocoding

import (
	"context"
	"errors"

	"github.com/oselednik/trackplace/internal/models"
)

// Provider is an interface that defines a method for reverse geocoding.
// The ReverseGeocode method takes a context and a coordinate pair as input,
// and returns the resolved place information and an error if any occurs.
type Provider interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Place, error)
}

// ErrNoResult is returned when the provider answered the request but found no
// place for the given coordinates. Callers can distinguish this from
// transport or authentication failures.
var ErrNoResult = errors.New("no place found for coordinates")
