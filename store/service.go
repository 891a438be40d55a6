// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jcodagnone/storelocator/geocode"
	"github.com/jcodagnone/storelocator/observability"
	"github.com/jcodagnone/storelocator/settings"
)

// Mode selects between creating a store and updating an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}

	return "create"
}

// Messages shown after a successful save.
const (
	MessageAdded   = "Store succesfully added."
	MessageUpdated = "Store details updated."
)

// SaveRequest is one submitted store form. ID is only used by ModeUpdate.
type SaveRequest struct {
	Mode  Mode
	ID    int64
	Input Input
}

// Result is a successful save. ClearInput tells the form to reset.
type Result struct {
	Store      *Store `json:"store"`
	Message    string `json:"message"`
	ClearInput bool   `json:"clear_input"`
}

// Dependencies of a Service. Clock and Metrics are optional.
type Dependencies struct {
	Repository Repository
	Geocoder   geocode.Geocoder
	Authorizer Authorizer
	Clock      clockwork.Clock
	Metrics    *observability.Metrics
}

// Service validates, resolves and persists stores.
type Service struct {
	repo       Repository
	geocoder   geocode.Geocoder
	authorizer Authorizer
	clock      clockwork.Clock
	metrics    *observability.Metrics
}

// NewService creates a Service.
func NewService(deps Dependencies) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		repo:       deps.Repository,
		geocoder:   deps.Geocoder,
		authorizer: deps.Authorizer,
		clock:      clock,
		metrics:    deps.Metrics,
	}
}

// Save runs the whole pipeline for req. Nothing is written unless the input
// is valid and the coordinates were resolved. cfg supplies the geocoding
// language, region and API key, so a change to the saved settings applies to
// the next save.
func (s *Service) Save(ctx context.Context, cfg settings.Settings, req SaveRequest) (*Result, error) {
	op := req.Mode.String()

	st, err := ValidateInput(req.Input)
	if err != nil {
		s.metrics.StoreWrite(op, "validation_error")

		return nil, err
	}

	if err := NewResolver(s.geocoder, GeocodeParams(cfg)).Resolve(ctx, st, req.Input); err != nil {
		s.metrics.StoreWrite(op, "geocode_error")

		return nil, err
	}

	st.Zip = strings.ToUpper(strings.TrimSpace(st.Zip))

	if st.H3, err = st.Point.H3Cells(); err != nil {
		log.Printf("h3 cells for %s: %v", st.Point, err)
	}

	now := s.clock.Now().UTC()
	st.UpdatedAt = now

	var res *Result

	switch req.Mode {
	case ModeUpdate:
		res, err = s.update(ctx, req.ID, st)
	default:
		res, err = s.create(ctx, now, st)
	}

	if err != nil {
		s.metrics.StoreWrite(op, "persistence_error")
		log.Printf("%s store: %v", op, err)

		return nil, err
	}

	s.metrics.StoreWrite(op, "success")

	return res, nil
}

func (s *Service) create(ctx context.Context, now time.Time, st *Store) (*Result, error) {
	st.CreatedAt = now
	st.Active = true

	id, err := s.repo.Insert(ctx, st)
	if err != nil {
		return nil, &PersistenceError{Kind: InsertFailed, Err: err}
	}

	st.ID = id

	return &Result{Store: st, Message: MessageAdded, ClearInput: true}, nil
}

func (s *Service) update(ctx context.Context, id int64, st *Store) (*Result, error) {
	st.ID = id

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Kind: UpdateFailed, Err: err}
	}

	st.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, &PersistenceError{Kind: UpdateFailed, Err: err}
	}

	return &Result{Store: st, Message: MessageUpdated, ClearInput: true}, nil
}

// GeocodeParams returns the geocoding options held in cfg.
func GeocodeParams(cfg settings.Settings) geocode.Params {
	return geocode.Params{
		Language: cfg.APILanguage,
		Region:   cfg.APIRegion,
		APIKey:   cfg.APIKey,
	}
}

// Delete removes the store when token authorizes it. Every failure is
// reported as the same DeleteFailed error.
func (s *Service) Delete(ctx context.Context, id int64, token string) error {
	if s.authorizer == nil || !s.authorizer.Authorize(id, token) {
		s.metrics.StoreWrite("delete", "unauthorized")

		return &PersistenceError{Kind: DeleteFailed}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.metrics.StoreWrite("delete", "persistence_error")
		log.Printf("delete store %d: %v", id, err)

		return &PersistenceError{Kind: DeleteFailed}
	}

	s.metrics.StoreWrite("delete", "success")

	return nil
}

// Get returns the store with id.
func (s *Service) Get(ctx context.Context, id int64) (*Store, error) {
	return s.repo.Get(ctx, id)
}

// Page is one page of the store overview.
type Page struct {
	Stores []*Store `json:"stores"`
	Total  int      `json:"total"`
}

// List returns the stores matching filter along with the unpaginated total.
func (s *Service) List(ctx context.Context, filter ListFilter) (*Page, error) {
	stores, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}

	if stores == nil {
		stores = []*Store{}
	}

	return &Page{Stores: stores, Total: total}, nil
}
