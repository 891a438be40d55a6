// Copyright 2025 The StoreLocator Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

import (
	"fmt"

	"github.com/uber/h3-go/v4"
)

// MaxH3Resolution is the finest H3 resolution indexed for a point.
const MaxH3Resolution = 8

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// H3Cells returns the H3 cells containing the point, index 0 holding
// resolution 1 and the last index resolution MaxH3Resolution.
func (p Point) H3Cells() ([MaxH3Resolution]int64, error) {
	var cells [MaxH3Resolution]int64

	latLng := h3.NewLatLng(p.Lat, p.Lng)
	for res := 1; res <= MaxH3Resolution; res++ {
		cell, err := h3.LatLngToCell(latLng, res)
		if err != nil {
			return cells, fmt.Errorf("error converting to h3 cell at res %d: %w", res, err)
		}

		cells[res-1] = int64(cell)
	}

	return cells, nil
}
