// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no store has the requested id.
var ErrNotFound = errors.New("store not found")

var errNoGeocoder = errors.New("no geocoder configured")

// MessageMissingFields is shown when required fields were left empty.
const MessageMissingFields = "Please fill in all the required fields."

// ValidationError lists the required fields that were empty. Nothing is
// written when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (missing: %s)", MessageMissingFields, strings.Join(e.Fields, ", "))
}

// Message returns the operator facing text.
func (e *ValidationError) Message() string {
	return MessageMissingFields
}

// PersistenceKind identifies the write that failed.
type PersistenceKind int

const (
	// InsertFailed a new store could not be saved.
	InsertFailed PersistenceKind = iota
	// UpdateFailed an existing store could not be updated.
	UpdateFailed
	// DeleteFailed a store could not be deleted. The reason is not disclosed.
	DeleteFailed
)

func (k PersistenceKind) String() string {
	switch k {
	case InsertFailed:
		return "insert_failed"
	case UpdateFailed:
		return "update_failed"
	default:
		return "delete_failed"
	}
}

// Message returns the operator facing text for the kind.
func (k PersistenceKind) Message() string {
	switch k {
	case InsertFailed:
		return "There was a problem saving the new store details, please try again."
	case UpdateFailed:
		return "There was a problem updating the store details, please try again."
	default:
		return "The store could not be deleted."
	}
}

// PersistenceError is a failed write. The stored data is left unchanged.
type PersistenceError struct {
	Kind PersistenceKind
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.Message(), e.Err)
	}

	return e.Kind.Message()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError

	return errors.As(err, &vErr)
}

// IsPersistenceError reports whether err is a *PersistenceError of kind.
func IsPersistenceError(err error, kind PersistenceKind) bool {
	var pErr *PersistenceError

	return errors.As(err, &pErr) && pErr.Kind == kind
}
