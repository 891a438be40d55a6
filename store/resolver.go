// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"log"

	"github.com/jcodagnone/storelocator/geocode"
)

// Resolver fills in the coordinates and country ISO of a store, either from
// the submitted values or from the geocoder.
type Resolver struct {
	geocoder geocode.Geocoder
	params   geocode.Params
}

// NewResolver returns a resolver that sends params with every lookup.
func NewResolver(geocoder geocode.Geocoder, params geocode.Params) *Resolver {
	return &Resolver{geocoder: geocoder, params: params}
}

// Resolve sets s.Point and s.CountryISO. Submitted coordinates win when
// ValidateLatLng accepts them. Otherwise the address is geocoded exactly once
// and any failure is returned as a *geocode.GeocodingError, leaving s as it
// was.
func (r *Resolver) Resolve(ctx context.Context, s *Store, in Input) error {
	if ll, ok := ValidateLatLng(in.Lat, in.Lng); ok {
		s.Point = ll.Point()
		s.CountryISO = in.CountryISO

		return nil
	}

	if r.geocoder == nil {
		return &geocode.GeocodingError{
			Type:    geocode.ErrorTypeFailure,
			Message: geocode.MessageFailure,
			Err:     errNoGeocoder,
		}
	}

	res, err := r.geocoder.Geocode(ctx, geocode.Address{
		Street:  s.Street,
		City:    s.City,
		Zip:     s.Zip,
		Country: s.Country,
	}, r.params)
	if err != nil {
		log.Printf("geocoding %q failed: %v", s.Name, err)

		return err
	}

	s.Point = res.Point
	s.CountryISO = res.CountryISO

	// country is required, keep the submitted one if the provider gave none
	if res.Country != "" {
		s.Country = res.Country
	}

	return nil
}
