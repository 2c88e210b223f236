package geocoding

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/oselednik/trackplace/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to resolve coordinates
// into administrative place names via the Google Maps geocoding services.
type GoogleProvider struct {
	client   GoogleAPIClient // client is the Google Maps API client
	language string          // language for resolved place names (e.g. "ja")
	log      *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of the Google Maps client used by the
// provider, extracted so tests can substitute a mock.
type GoogleAPIClient interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// googleResultTypes restricts reverse-geocoding responses to administrative
// place results, which keeps the answer at region/city granularity instead of
// street addresses.
var googleResultTypes = []string{
	"administrative_area_level_1",
	"administrative_area_level_2",
	"administrative_area_level_3",
	"sublocality",
	"sublocality_level_2",
	"locality",
}

// NewGoogleProvider initializes a new GoogleProvider with the given API client,
// preferred result language and logger.
func NewGoogleProvider(client GoogleAPIClient, language string, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, language: language, log: log}
}

// ReverseGeocode resolves the given coordinate pair into place information
// using the Google Maps Geocoding API. It returns ErrNoResult if the API
// answered with an empty result list for the coordinates.
func (gp *GoogleProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Place, error) {
	gp.log.DebugContext(ctx, "Reverse geocoding using Google Maps", "lat", lat, "lon", lon)

	req := maps.GeocodingRequest{
		LatLng:     &maps.LatLng{Lat: lat, Lng: lon},
		Language:   gp.language,
		ResultType: googleResultTypes,
	}
	geocodeResponse, err := gp.client.ReverseGeocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode coordinates: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrNoResult
	}

	return placeFromComponents(geocodeResponse[0]), nil
}

// placeFromComponents maps the address components of a geocoding result onto
// the named administrative fields of a Place.
func placeFromComponents(result maps.GeocodingResult) *models.Place {
	place := models.Place{FormattedAddress: result.FormattedAddress}

	for _, component := range result.AddressComponents {
		switch {
		case slices.Contains(component.Types, "country"):
			place.Country = component.LongName
		case slices.Contains(component.Types, "administrative_area_level_1"):
			place.AdminArea1 = component.LongName
		case slices.Contains(component.Types, "administrative_area_level_2"):
			place.AdminArea2 = component.LongName
		case slices.Contains(component.Types, "locality"):
			place.Locality = component.LongName
		case slices.Contains(component.Types, "sublocality"):
			place.Sublocality = component.LongName
		}
	}

	return &place
}
