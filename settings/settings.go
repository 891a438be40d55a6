// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings sanitizes and stores the store locator configuration.
//
// Settings are rebuilt in full from the submitted form on every save. The
// sanitizer never fails: a missing or invalid value is replaced by its entry
// in Defaults and the field is reported back so the caller can warn the
// operator.
package settings

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jcodagnone/storelocator/utils/textutils"
)

// Settings is the complete, sanitized configuration. The JSON names are the
// keys of the persisted blob and of the submitted form.
type Settings struct {
	APIKey      string `json:"api_key"`
	APILanguage string `json:"api_language"`
	APIRegion   string `json:"api_region"`

	DistanceUnit string `json:"distance_unit"`
	MaxResults   string `json:"max_results"`
	SearchRadius string `json:"search_radius"`

	MarkerBounce    bool   `json:"marker_bounce"`
	ZoomLevel       int    `json:"zoom_level"`
	ZoomName        string `json:"zoom_name"`
	ZoomLatLng      string `json:"zoom_latlng"`
	MapType         string `json:"map_type"`
	Streetview      bool   `json:"streetview"`
	PanControls     bool   `json:"pan_controls"`
	ControlPosition string `json:"control_position"`
	ControlStyle    string `json:"control_style"`
	AutoLocate      bool   `json:"auto_locate"`

	Height          int  `json:"height"`
	InfowindowWidth int  `json:"infowindow_width"`
	SearchWidth     int  `json:"search_width"`
	LabelWidth      int  `json:"label_width"`
	ResultsDropdown bool `json:"results_dropdown"`

	StartMarker string `json:"start_marker"`
	StoreMarker string `json:"store_marker"`

	SearchLabel     string `json:"search_label"`
	SearchBtnLabel  string `json:"search_btn_label"`
	PreloaderLabel  string `json:"preloader_label"`
	RadiusLabel     string `json:"radius_label"`
	NoResultsLabel  string `json:"no_results_label"`
	ResultsLabel    string `json:"results_label"`
	DirectionsLabel string `json:"directions_label"`
	ErrorLabel      string `json:"error_label"`
	PhoneLabel      string `json:"phone_label"`
	FaxLabel        string `json:"fax_label"`
	HoursLabel      string `json:"hours_label"`
	StartLabel      string `json:"start_label"`
	LimitLabel      string `json:"limit_label"`
}

// Setting keys.
const (
	KeyAPIKey          = "api_key"
	KeyAPILanguage     = "api_language"
	KeyAPIRegion       = "api_region"
	KeyDistanceUnit    = "distance_unit"
	KeyMaxResults      = "max_results"
	KeySearchRadius    = "search_radius"
	KeyMarkerBounce    = "marker_bounce"
	KeyZoomLevel       = "zoom_level"
	KeyZoomName        = "zoom_name"
	KeyZoomLatLng      = "zoom_latlng"
	KeyMapType         = "map_type"
	KeyStreetview      = "streetview"
	KeyPanControls     = "pan_controls"
	KeyControlPosition = "control_position"
	KeyControlStyle    = "control_style"
	KeyAutoLocate      = "auto_locate"
	KeyHeight          = "height"
	KeyInfowindowWidth = "infowindow_width"
	KeySearchWidth     = "search_width"
	KeyLabelWidth      = "label_width"
	KeyResultsDropdown = "results_dropdown"
	KeyStartMarker     = "start_marker"
	KeyStoreMarker     = "store_marker"
)

// Checkboxes are the keys whose presence alone turns the setting on.
var Checkboxes = []string{
	KeyMarkerBounce,
	KeyStreetview,
	KeyPanControls,
	KeyAutoLocate,
	KeyResultsDropdown,
}

// IsCheckbox reports whether key is one of Checkboxes.
func IsCheckbox(key string) bool {
	return slices.Contains(Checkboxes, key)
}

const labelSuffix = "_label"

// RequiredLabels are the label names that can never be empty. The setting
// key of a label is its name followed by "_label".
var RequiredLabels = []string{
	"search",
	"search_btn",
	"preloader",
	"radius",
	"no_results",
	"results",
	"directions",
	"error",
	"phone",
	"fax",
	"hours",
	"start",
	"limit",
}

var (
	// MapTypes are the accepted values of map_type.
	MapTypes = []string{"roadmap", "satellite", "hybrid", "terrain"}

	// DistanceUnits are the accepted values of distance_unit.
	DistanceUnits = []string{"km", "mi"}
)

// Zoom level bounds.
const (
	MinZoomLevel = 1
	MaxZoomLevel = 12
)

// Defaults is the value every setting falls back to.
var Defaults = Settings{
	DistanceUnit:    "km",
	MaxResults:      "[25],50,75,100",
	SearchRadius:    "10,25,[50],100,200,500",
	MarkerBounce:    true,
	ZoomLevel:       3,
	MapType:         "roadmap",
	Streetview:      false,
	PanControls:     false,
	ControlPosition: "left",
	ControlStyle:    "small",
	AutoLocate:      true,
	Height:          350,
	InfowindowWidth: 225,
	SearchWidth:     179,
	LabelWidth:      95,
	ResultsDropdown: true,
	StartMarker:     "red.png",
	StoreMarker:     "blue.png",
	SearchLabel:     "Your location",
	SearchBtnLabel:  "Search",
	PreloaderLabel:  "Searching...",
	RadiusLabel:     "Search radius",
	NoResultsLabel:  "No results found",
	ResultsLabel:    "Results",
	DirectionsLabel: "Directions",
	ErrorLabel:      "Something went wrong, please try again!",
	PhoneLabel:      "Phone",
	FaxLabel:        "Fax",
	HoursLabel:      "Hours",
	StartLabel:      "Start location",
	LimitLabel:      "API usage limit reached",
}

// Raw is the submitted form, keyed by setting key. Presence matters: a
// boolean toggle is on when its key is present, whatever the value.
type Raw map[string]string

// Has reports whether key was submitted.
func (r Raw) Has(key string) bool {
	_, ok := r[key]

	return ok
}

// text returns the sanitized value of key, empty when absent.
func (r Raw) text(key string) string {
	return textutils.SanitizeText(r[key])
}

// Label returns a pointer to the label field called name, nil when name is
// not one of RequiredLabels.
func (s *Settings) Label(name string) *string {
	switch name {
	case "search":
		return &s.SearchLabel
	case "search_btn":
		return &s.SearchBtnLabel
	case "preloader":
		return &s.PreloaderLabel
	case "radius":
		return &s.RadiusLabel
	case "no_results":
		return &s.NoResultsLabel
	case "results":
		return &s.ResultsLabel
	case "directions":
		return &s.DirectionsLabel
	case "error":
		return &s.ErrorLabel
	case "phone":
		return &s.PhoneLabel
	case "fax":
		return &s.FaxLabel
	case "hours":
		return &s.HoursLabel
	case "start":
		return &s.StartLabel
	case "limit":
		return &s.LimitLabel
	}

	return nil
}

// Sanitize builds the complete settings from raw. It never fails; the keys
// of the fields that were replaced by their default are returned in the
// order they were checked.
func Sanitize(raw Raw) (Settings, Defaulted) {
	var (
		out       Settings
		defaulted Defaulted
	)

	out.APIKey = raw.text(KeyAPIKey)
	out.APILanguage = textutils.StripTags(raw[KeyAPILanguage])
	out.APIRegion = textutils.StripTags(raw[KeyAPIRegion])

	out.DistanceUnit = oneOf(raw[KeyDistanceUnit], DistanceUnits, Defaults.DistanceUnit, KeyDistanceUnit, &defaulted)

	out.MaxResults = nonEmpty(raw.text(KeyMaxResults), Defaults.MaxResults, KeyMaxResults, &defaulted)
	out.SearchRadius = nonEmpty(raw.text(KeySearchRadius), Defaults.SearchRadius, KeySearchRadius, &defaulted)

	out.MarkerBounce = raw.Has(KeyMarkerBounce)

	if z, ok := zoomLevel(raw[KeyZoomLevel]); ok {
		out.ZoomLevel = z
	} else {
		out.ZoomLevel = Defaults.ZoomLevel
		defaulted = append(defaulted, KeyZoomLevel)
	}

	// A zoom location without a name is meaningless, drop its coordinates too.
	out.ZoomName = raw.text(KeyZoomName)
	if out.ZoomName != "" {
		out.ZoomLatLng = raw.text(KeyZoomLatLng)
	}

	out.MapType = oneOf(raw[KeyMapType], MapTypes, Defaults.MapType, KeyMapType, &defaulted)

	out.Streetview = raw.Has(KeyStreetview)
	out.PanControls = raw.Has(KeyPanControls)
	out.ControlPosition = either(raw[KeyControlPosition], "left", "right")
	out.ControlStyle = either(raw[KeyControlStyle], "small", "large")
	out.AutoLocate = raw.Has(KeyAutoLocate)

	out.Height = pixels(raw[KeyHeight], Defaults.Height, KeyHeight, &defaulted)
	out.InfowindowWidth = pixels(raw[KeyInfowindowWidth], Defaults.InfowindowWidth, KeyInfowindowWidth, &defaulted)
	out.SearchWidth = pixels(raw[KeySearchWidth], Defaults.SearchWidth, KeySearchWidth, &defaulted)
	out.LabelWidth = pixels(raw[KeyLabelWidth], Defaults.LabelWidth, KeyLabelWidth, &defaulted)

	out.ResultsDropdown = raw.Has(KeyResultsDropdown)

	out.StartMarker = textutils.StripTags(raw[KeyStartMarker])
	out.StoreMarker = textutils.StripTags(raw[KeyStoreMarker])

	defaults := Defaults
	for _, name := range RequiredLabels {
		key := name + labelSuffix

		v := raw.text(key)
		if v == "" {
			v = *defaults.Label(name)
			defaulted = append(defaulted, key)
		}

		*out.Label(name) = v
	}

	return out, defaulted
}

// Raw returns the form that sanitizes back into s.
func (s Settings) Raw() Raw {
	raw := Raw{
		KeyAPIKey:          s.APIKey,
		KeyAPILanguage:     s.APILanguage,
		KeyAPIRegion:       s.APIRegion,
		KeyDistanceUnit:    s.DistanceUnit,
		KeyMaxResults:      s.MaxResults,
		KeySearchRadius:    s.SearchRadius,
		KeyZoomLevel:       strconv.Itoa(s.ZoomLevel),
		KeyZoomName:        s.ZoomName,
		KeyZoomLatLng:      s.ZoomLatLng,
		KeyMapType:         s.MapType,
		KeyControlPosition: s.ControlPosition,
		KeyControlStyle:    s.ControlStyle,
		KeyHeight:          strconv.Itoa(s.Height),
		KeyInfowindowWidth: strconv.Itoa(s.InfowindowWidth),
		KeySearchWidth:     strconv.Itoa(s.SearchWidth),
		KeyLabelWidth:      strconv.Itoa(s.LabelWidth),
		KeyStartMarker:     s.StartMarker,
		KeyStoreMarker:     s.StoreMarker,
	}

	for key, on := range map[string]bool{
		KeyMarkerBounce:    s.MarkerBounce,
		KeyStreetview:      s.Streetview,
		KeyPanControls:     s.PanControls,
		KeyAutoLocate:      s.AutoLocate,
		KeyResultsDropdown: s.ResultsDropdown,
	} {
		if on {
			raw[key] = "1"
		}
	}

	for _, name := range RequiredLabels {
		raw[name+labelSuffix] = *s.Label(name)
	}

	return raw
}

func oneOf(v string, allowed []string, def, key string, defaulted *Defaulted) string {
	if slices.Contains(allowed, v) {
		return v
	}

	*defaulted = append(*defaulted, key)

	return def
}

func nonEmpty(v, def, key string, defaulted *Defaulted) string {
	if v != "" {
		return v
	}

	*defaulted = append(*defaulted, key)

	return def
}

// either returns first when v equals it, second for anything else.
func either(v, first, second string) string {
	if v == first {
		return first
	}

	return second
}

func pixels(v string, def int, key string, defaulted *Defaulted) int {
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
		return n
	}

	*defaulted = append(*defaulted, key)

	return def
}

func zoomLevel(v string) (int, bool) {
	z, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || z < MinZoomLevel || z > MaxZoomLevel {
		return 0, false
	}

	return z, true
}

// ZoomLevels lists the selectable zoom levels with their descriptions.
func ZoomLevels() []Option {
	levels := make([]Option, 0, MaxZoomLevel)

	for z := MinZoomLevel; z <= MaxZoomLevel; z++ {
		name := strconv.Itoa(z)

		switch z {
		case 1:
			name += " - World view"
		case Defaults.ZoomLevel:
			name += " - Default"
		case MaxZoomLevel:
			name += " - Roadmap view"
		}

		levels = append(levels, Option{Name: name, Code: strconv.Itoa(z)})
	}

	return levels
}
