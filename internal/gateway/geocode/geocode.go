package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"parcelservice/internal/entities"
)

// ErrAddressNotFound is the normal miss outcome: the provider answered but
// produced no usable match. Callers reject the address, they do not retry.
var ErrAddressNotFound = errors.New("address not found")

const requestTimeout = 10 * time.Second

// Client resolves free-text addresses against an OpenRouteService-style
// /geocode/search endpoint. Every lookup is scoped to one metropolitan
// area by appending the configured locality qualifier.
type Client struct {
	baseURL    string
	apiKey     string
	locality   string
	httpClient *http.Client
}

func New(baseURL, apiKey, locality string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		locality: locality,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Resolve geocodes one address. A provider transport failure is an error;
// an empty result set is ErrAddressNotFound.
func (c *Client) Resolve(ctx context.Context, address string) (*entities.Coordinate, error) {
	endpoint := c.baseURL + "/geocode/search"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}

	q := url.Values{}
	q.Set("text", fmt.Sprintf("%s, %s", address, c.locality))
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAddressNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected geocoder status: %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return nil, ErrAddressNotFound
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return nil, ErrAddressNotFound
	}

	// GeoJSON order is lon, lat.
	return &entities.Coordinate{
		Lat: coords[1],
		Lon: coords[0],
	}, nil
}
