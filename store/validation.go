// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jcodagnone/storelocator/spatial"
	"github.com/jcodagnone/storelocator/utils/textutils"
)

// numericRegex matches decimal numbers with optional sign, fraction and
// exponent, surrounded by optional whitespace. Hexadecimal, Inf and NaN are
// not numbers here.
var numericRegex = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

// ValidateInput checks the required fields of in and returns the candidate
// record with its text fields cleaned up. Coordinates, country ISO and id
// are left for the Resolver and the Service.
func ValidateInput(in Input) (*Store, error) {
	s := &Store{
		Name:        textutils.SanitizeText(in.Name),
		Street:      textutils.SanitizeText(in.Street),
		City:        textutils.SanitizeText(in.City),
		State:       textutils.SanitizeText(in.State),
		Zip:         textutils.SanitizeText(in.Zip),
		Country:     textutils.SanitizeText(in.Country),
		Description: strings.TrimSpace(textutils.StripTags(in.Description)),
		Phone:       textutils.SanitizeText(in.Phone),
		Fax:         textutils.SanitizeText(in.Fax),
		URL:         textutils.SanitizeText(in.URL),
		Email:       textutils.SanitizeText(in.Email),
		Hours:       strings.TrimSpace(textutils.StripTags(in.Hours)),
		ThumbID:     thumbID(in.ThumbID),
		Active:      bool(in.Active),
	}

	var missing []string

	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"street", s.Street},
		{"city", s.City},
		{"zip", s.Zip},
		{"country", s.Country},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	return s, nil
}

func thumbID(v string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || id < 0 {
		return 0
	}

	return id
}

// LatLng holds submitted coordinates exactly as they were sent.
type LatLng struct {
	Lat string
	Lng string
}

// ValidateLatLng accepts the pair when either value is numeric. The other
// value is passed through unchecked and no range check is done.
func ValidateLatLng(lat, lng string) (LatLng, bool) {
	if !IsNumeric(lat) && !IsNumeric(lng) {
		return LatLng{}, false
	}

	return LatLng{Lat: lat, Lng: lng}, true
}

// Point converts the pair. A value that is not numeric becomes 0.
func (ll LatLng) Point() spatial.Point {
	return spatial.Point{Lat: toFloat(ll.Lat), Lng: toFloat(ll.Lng)}
}

// IsNumeric reports whether v is a decimal number.
func IsNumeric(v string) bool {
	return numericRegex.MatchString(v)
}

func toFloat(v string) float64 {
	if !IsNumeric(v) {
		return 0
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}

	return f
}
