// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/jcodagnone/storelocator/observability"
	"github.com/jcodagnone/storelocator/spatial"
)

const (
	// DefaultEndpoint is the Google Maps Geocoding API JSON endpoint.
	DefaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 5 * time.Second

	statusTransportError = "transport_error"
)

// GoogleOptions configures a GoogleMapsGeocoder.
type GoogleOptions struct {
	// APIKey is sent as the key parameter when not empty.
	APIKey string

	// Region biases results towards a ccTLD region code, optional.
	Region string

	// Endpoint overrides DefaultEndpoint.
	Endpoint string

	// Timeout overrides DefaultTimeout.
	Timeout time.Duration

	// Transport for the HTTP client, http.DefaultTransport when nil.
	Transport http.RoundTripper

	Metrics *observability.Metrics
}

// GoogleMapsGeocoder uses Google Maps Geocoding API.
type GoogleMapsGeocoder struct {
	apiKey     string
	region     string
	endpoint   string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// NewGoogleMapsGeocoder creates a new Google Maps geocoder.
func NewGoogleMapsGeocoder(opts GoogleOptions) *GoogleMapsGeocoder {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &GoogleMapsGeocoder{
		apiKey:   opts.APIKey,
		region:   opts.Region,
		endpoint: opts.Endpoint,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		metrics: opts.Metrics,
	}
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type googleMapsResponse struct {
	Results []struct {
		AddressComponents []addressComponent `json:"address_components"`
		Geometry          struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status       string `json:"status"` // OK, ZERO_RESULTS, etc.
	ErrorMessage string `json:"error_message"`
}

// Geocode performs exactly one request, there are no retries.
func (g *GoogleMapsGeocoder) Geocode(ctx context.Context, addr Address, p Params) (*Result, error) {
	params := url.Values{}
	params.Set("address", addr.Line())
	params.Set("language", p.Language)

	if key := cmp.Or(p.APIKey, g.apiKey); key != "" {
		params.Set("key", key)
	}

	if region := cmp.Or(p.Region, g.region); region != "" {
		params.Set("region", region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, failure(fmt.Errorf("creating request: %w", err))
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.metrics.GeocodeRequest(statusTransportError)

		return nil, failure(fmt.Errorf("geocoding request failed: %w", err))
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.metrics.GeocodeRequest(statusTransportError)

		return nil, failure(fmt.Errorf("google maps returned status %d", resp.StatusCode))
	}

	var gmResp googleMapsResponse
	if err := json.NewDecoder(resp.Body).Decode(&gmResp); err != nil {
		g.metrics.GeocodeRequest(statusTransportError)

		return nil, failure(fmt.Errorf("decoding response: %w", err))
	}

	g.metrics.GeocodeRequest(gmResp.Status)

	if gmResp.Status != StatusOK {
		if gmResp.ErrorMessage != "" {
			log.Printf("geocoding %q: %s: %s", addr.Line(), gmResp.Status, gmResp.ErrorMessage)
		}

		return nil, errorForStatus(gmResp.Status)
	}

	if len(gmResp.Results) == 0 {
		return nil, failure(fmt.Errorf("status OK without results for address: %s", addr.Line()))
	}

	first := gmResp.Results[0]
	result := &Result{
		Status: StatusOK,
		Point: spatial.Point{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
	}

	if c, ok := countryComponent(first.AddressComponents); ok {
		result.Country = c.LongName
		result.CountryISO = c.ShortName
	}

	return result, nil
}

// countryComponent finds the first component whose leading types are
// exactly "country" followed by "political".
func countryComponent(components []addressComponent) (addressComponent, bool) {
	for _, c := range components {
		if len(c.Types) >= 2 && c.Types[0] == "country" && c.Types[1] == "political" {
			return c, true
		}
	}

	return addressComponent{}, false
}
