// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"slices"
	"strings"
)

// Defaulted lists the keys of the settings that were replaced by their
// default during sanitization.
type Defaulted []string

// Contains reports whether key was defaulted.
func (d Defaulted) Contains(key string) bool {
	return slices.Contains(d, key)
}

// Warning is an advisory raised when a setting the operator is expected to
// fill in was left empty.
type Warning string

// Warning kinds.
const (
	WarningMaxResults   Warning = "max_results"
	WarningSearchRadius Warning = "search_radius"
	WarningLabelMissing Warning = "label_missing"
)

// Message returns the text shown to the operator.
func (w Warning) Message() string {
	switch w {
	case WarningMaxResults:
		return "The max results field cannot be empty, the default value has been restored."
	case WarningSearchRadius:
		return "The search radius field cannot be empty, the default value has been restored."
	case WarningLabelMissing:
		return "One of the label fields was left empty, the default value for that field has been restored."
	}

	return string(w)
}

// Warnings returns the warnings for d. Any number of defaulted labels
// produce a single WarningLabelMissing. Other defaulted fields are silently
// corrected and raise no warning.
func (d Defaulted) Warnings() []Warning {
	var warnings []Warning

	if d.Contains(KeyMaxResults) {
		warnings = append(warnings, WarningMaxResults)
	}

	if d.Contains(KeySearchRadius) {
		warnings = append(warnings, WarningSearchRadius)
	}

	if slices.ContainsFunc(d, func(key string) bool { return strings.HasSuffix(key, labelSuffix) }) {
		warnings = append(warnings, WarningLabelMissing)
	}

	return warnings
}
