package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oselednik/trackplace/internal/models"
	"golang.org/x/time/rate"
)

// NominatimBaseURL is the public Nominatim reverse-geocoding endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/reverse"

// NominatimProvider implements the Provider interface using OpenStreetMap's
// Nominatim API. This is a free service with usage limits (1 request/second
// for fair use), enforced here with a rate limiter.
type NominatimProvider struct {
	client   HTTPClient    // HTTP client for making requests
	baseURL  string        // Base URL for the Nominatim API
	language string        // Preferred language for resolved place names
	limiter  *rate.Limiter // Rate limiter per Nominatim usage policy
	log      *slog.Logger  // Logger for logging operations
	// userAgent is required by Nominatim usage policy
	userAgent string
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// nominatimResponse represents the JSON response from the Nominatim reverse
// endpoint. A response can carry an "error" field instead of place data when
// nothing is found for the coordinates.
type nominatimResponse struct {
	Error       string `json:"error"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Country       string `json:"country"`
		State         string `json:"state"`
		Province      string `json:"province"`
		County        string `json:"county"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
	} `json:"address"`
}

// NewNominatimProvider creates a new Nominatim reverse-geocoding provider.
// Uses the public Nominatim API endpoint by default.
func NewNominatimProvider(language string, rateLimit int, log *slog.Logger) *NominatimProvider {
	const timeout = 10
	return &NominatimProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL:  NominatimBaseURL,
		language: language,
		limiter:  rate.NewLimiter(rate.Limit(rateLimit), 1),
		log:      log,
		// User-Agent MUST include valid contact info per Nominatim usage policy:
		// https://operations.osmfoundation.org/policies/nominatim/
		userAgent: "Trackplace/1.0 (https://github.com/oselednik/trackplace)",
	}
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom
// HTTP client. Useful for testing with mocked HTTP clients.
func NewNominatimProviderWithClient(client HTTPClient, language string, log *slog.Logger) *NominatimProvider {
	provider := NewNominatimProvider(language, 1, log)
	provider.client = client
	provider.limiter = rate.NewLimiter(rate.Inf, 1)
	return provider
}

// ReverseGeocode resolves a coordinate pair into place information using the
// Nominatim reverse endpoint. It respects Nominatim's usage policy by rate
// limiting requests and sending an identifying User-Agent header. Returns
// ErrNoResult when the API cannot geocode the coordinates.
func (np *NominatimProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Place, error) {
	np.log.DebugContext(ctx, "Reverse geocoding using Nominatim", "lat", lat, "lon", lon)

	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("addressdetails", "1") // Include detailed address breakdown
	query.Set("zoom", "14")          // Suburb-level granularity, no street addresses
	if np.language != "" {
		query.Set("accept-language", np.language)
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set required headers per Nominatim usage policy
	req.Header.Set("User-Agent", np.userAgent)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute reverse geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result nominatimResponse
	if err = json.Unmarshal(body, &result); err != nil {
		np.log.ErrorContext(ctx, "Failed to parse Nominatim response", "error", err, "body", string(body))
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	// The reverse endpoint reports "Unable to geocode" via an error field
	// with HTTP 200.
	if result.Error != "" {
		return nil, ErrNoResult
	}

	place := np.placeFromAddress(result)
	if place.IsZero() {
		return nil, ErrNoResult
	}

	return place, nil
}

// placeFromAddress maps a Nominatim address object onto the named
// administrative fields of a Place. Nominatim reports the locality under
// city, town or village depending on settlement size.
func (np *NominatimProvider) placeFromAddress(result nominatimResponse) *models.Place {
	place := models.Place{
		Country:          result.Address.Country,
		AdminArea1:       result.Address.State,
		AdminArea2:       result.Address.County,
		FormattedAddress: result.DisplayName,
	}
	if place.AdminArea1 == "" {
		place.AdminArea1 = result.Address.Province
	}

	switch {
	case result.Address.City != "":
		place.Locality = result.Address.City
	case result.Address.Town != "":
		place.Locality = result.Address.Town
	case result.Address.Village != "":
		place.Locality = result.Address.Village
	}

	if result.Address.Suburb != "" {
		place.Sublocality = result.Address.Suburb
	} else {
		place.Sublocality = result.Address.Neighbourhood
	}

	return &place
}
