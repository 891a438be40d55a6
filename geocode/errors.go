// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"errors"
	"fmt"
	"strings"
)

// GeocodingError is a lookup that did not produce coordinates.
type GeocodingError struct {
	Type    ErrorType
	Status  string // provider status, empty for transport failures
	Message string
	Err     error
}

// ErrorType classifies geocoding failures. Each type maps to a distinct
// message shown to the operator.
type ErrorType int

const (
	// ErrorTypeFailure covers transport errors, timeouts, malformed
	// responses and any provider status without a dedicated type.
	ErrorTypeFailure ErrorType = iota
	// ErrorTypeNoResults the address could not be found.
	ErrorTypeNoResults
	// ErrorTypeQuotaExceeded the daily request quota is exhausted.
	ErrorTypeQuotaExceeded
)

// User facing messages per error type.
const (
	MessageFailure       = "The Google Geocoding API failed to return valid data, please try again later."
	MessageNoResults     = "The Google Geocoding API returned no results for the store location. Please change the location and try again."
	MessageQuotaExceeded = "You have reached the daily allowed geocoding limit."
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeNoResults:
		return "no_results"
	case ErrorTypeQuotaExceeded:
		return "quota_exceeded"
	default:
		return "failure"
	}
}

// Message returns the operator facing text for the error type.
func (t ErrorType) Message() string {
	switch t {
	case ErrorTypeNoResults:
		return MessageNoResults
	case ErrorTypeQuotaExceeded:
		return MessageQuotaExceeded
	default:
		return MessageFailure
	}
}

func (e *GeocodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *GeocodingError) Unwrap() error {
	return e.Err
}

// errorForStatus maps a non OK provider status to its error.
func errorForStatus(status string) *GeocodingError {
	t := ErrorTypeFailure

	switch status {
	case StatusZeroResults:
		t = ErrorTypeNoResults
	case StatusOverQueryLimit:
		t = ErrorTypeQuotaExceeded
	}

	return &GeocodingError{Type: t, Status: status, Message: t.Message()}
}

func failure(err error) *GeocodingError {
	return &GeocodingError{Type: ErrorTypeFailure, Message: MessageFailure, Err: err}
}

// TypeOf returns the type of a geocoding error. Errors not produced by a
// Geocoder are reported as ErrorTypeFailure.
func TypeOf(err error) ErrorType {
	var geoErr *GeocodingError
	if errors.As(err, &geoErr) {
		return geoErr.Type
	}

	return ErrorTypeFailure
}

// IsNoResultsError reports whether err is a lookup without results.
func IsNoResultsError(err error) bool {
	if err == nil {
		return false
	}

	var geoErr *GeocodingError
	if errors.As(err, &geoErr) {
		return geoErr.Type == ErrorTypeNoResults
	}

	return strings.Contains(strings.ToLower(err.Error()), "zero_results")
}

// IsQuotaExceededError reports whether err is caused by an exhausted quota.
func IsQuotaExceededError(err error) bool {
	if err == nil {
		return false
	}

	var geoErr *GeocodingError
	if errors.As(err, &geoErr) {
		return geoErr.Type == ErrorTypeQuotaExceeded
	}

	errStr := strings.ToLower(err.Error())

	return strings.Contains(errStr, "over_query_limit") ||
		strings.Contains(errStr, "quota exceeded")
}
