// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// AvailableMarkers lists the marker images in dir that can be picked as the
// start or store marker. Retina variants (names containing "@2x") are
// skipped. A missing directory yields no markers.
func AvailableMarkers(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading marker directory: %w", err)
	}

	var markers []string

	for _, e := range entries {
		if e.IsDir() || strings.Contains(e.Name(), "@2x") {
			continue
		}

		markers = append(markers, e.Name())
	}

	sort.Strings(markers)

	return markers, nil
}
