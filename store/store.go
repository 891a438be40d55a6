// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

// Package store turns submitted store forms into validated, geocoded
// records and persists them.
package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jcodagnone/storelocator/spatial"
)

// Store is a directory entry for a physical location.
type Store struct {
	ID          int64         `json:"id"`
	Name        string        `json:"store"`
	Street      string        `json:"street"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Zip         string        `json:"zip"`
	Country     string        `json:"country"`
	CountryISO  string        `json:"country_iso"`
	Point       spatial.Point `json:"latlng"`
	Description string        `json:"description"`
	Phone       string        `json:"phone"`
	Fax         string        `json:"fax"`
	URL         string        `json:"url"`
	Email       string        `json:"email"`
	Hours       string        `json:"hours"`
	ThumbID     int64         `json:"thumb_id"`
	Active      bool          `json:"active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	H3 [spatial.MaxH3Resolution]int64 `json:"-"`
}

// Input is a store form as submitted, before any validation. Coordinates
// are kept as the raw strings the client sent.
type Input struct {
	Name        string   `json:"store" form:"store"`
	Street      string   `json:"street" form:"street"`
	City        string   `json:"city" form:"city"`
	State       string   `json:"state" form:"state"`
	Zip         string   `json:"zip" form:"zip"`
	Country     string   `json:"country" form:"country"`
	CountryISO  string   `json:"country_iso" form:"country_iso"`
	Lat         string   `json:"lat" form:"lat"`
	Lng         string   `json:"lng" form:"lng"`
	Description string   `json:"desc" form:"desc"`
	Phone       string   `json:"phone" form:"phone"`
	Fax         string   `json:"fax" form:"fax"`
	URL         string   `json:"url" form:"url"`
	Email       string   `json:"email" form:"email"`
	Hours       string   `json:"hours" form:"hours"`
	ThumbID     string   `json:"thumb_id" form:"thumb_id"`
	Active      Checkbox `json:"active" form:"active"`
}

// Checkbox is a form checkbox. Browsers post "on" for a ticked box and omit
// unticked ones, so any value other than a false boolean means checked.
type Checkbox bool

func checked(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}

	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}

	return true
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for form posts.
func (c *Checkbox) UnmarshalParam(v string) error {
	*c = Checkbox(checked(v))

	return nil
}

// UnmarshalJSON accepts a JSON boolean or a form style string.
func (c *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = Checkbox(b)

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding checkbox: %w", err)
	}

	*c = Checkbox(checked(s))

	return nil
}
