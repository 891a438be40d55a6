// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

// Package geocode resolves postal addresses into coordinates and country
// information through the Google Maps Geocoding API.
package geocode

import (
	"context"
	"strings"

	"github.com/jcodagnone/storelocator/spatial"
)

// Status values returned by the geocoding API.
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
)

// Address is the part of a store used to build the geocoding query.
type Address struct {
	Street  string
	City    string
	Zip     string
	Country string
}

// Line returns the single line form sent to the provider.
func (a Address) Line() string {
	return strings.Join([]string{a.Street, a.City, a.Zip, a.Country}, ",")
}

// Result is the outcome of a successful lookup.
type Result struct {
	Status     string
	Point      spatial.Point
	Country    string // long name, in the requested language
	CountryISO string // short name, two letters
}

// Params are the per request options, taken from the saved settings at the
// time of the call. Empty fields fall back to what the geocoder was built with.
type Params struct {
	// Language of the returned country name
	Language string

	// Region biases results towards a ccTLD region code
	Region string

	APIKey string
}

// Geocoder interface for different geocoding providers.
type Geocoder interface {
	// Geocode resolves addr. Any status other than OK is reported as a
	// *GeocodingError.
	Geocode(ctx context.Context, addr Address, p Params) (*Result, error)
}
