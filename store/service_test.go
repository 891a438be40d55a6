// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jcodagnone/storelocator/geocode"
	"github.com/jcodagnone/storelocator/observability"
	"github.com/jcodagnone/storelocator/settings"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	svc      *Service
	repo     Repository
	geocoder *fakeGeocoder
	clock    *clockwork.FakeClock
	auth     *TokenAuthorizer
	metrics  *observability.Metrics
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	_, repo := setupTestDB(t)
	f := &serviceFixture{
		repo:     repo,
		geocoder: okGeocoder(),
		clock:    clockwork.NewFakeClockAt(epoch),
		auth:     NewTokenAuthorizer([]byte("test-secret")),
		metrics:  observability.NewMetricsForTesting(),
	}
	f.svc = NewService(Dependencies{
		Repository: repo,
		Geocoder:   f.geocoder,
		Authorizer: f.auth,
		Clock:      f.clock,
		Metrics:    f.metrics,
	})

	return f
}

func storedCount(t *testing.T, repo Repository) int {
	t.Helper()

	n, err := repo.Count(context.Background(), ListFilter{})
	require.NoError(t, err)

	return n
}

func TestSaveCreate(t *testing.T) {
	f := newServiceFixture(t)
	in := validInput()
	in.Zip = "  ab1 2cd "

	res, err := f.svc.Save(context.Background(), settings.Defaults, SaveRequest{Mode: ModeCreate, Input: in})
	require.NoError(t, err)

	assert.Equal(t, MessageAdded, res.Message)
	assert.True(t, res.ClearInput)
	assert.Equal(t, "AB1 2CD", res.Store.Zip)
	assert.True(t, res.Store.Active)
	assert.Equal(t, epoch, res.Store.CreatedAt)
	assert.NotZero(t, res.Store.H3[0])

	got, err := f.repo.Get(context.Background(), res.Store.ID)
	require.NoError(t, err)
	assert.Equal(t, "AB1 2CD", got.Zip)
	assert.Equal(t, "GB", got.CountryISO)
	assert.Equal(t, 51.5, got.Point.Lat)

	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.StoreWrites.WithLabelValues("create", "success")), 0)
}

func TestSaveUsesSettingsOfEachCall(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	cfg := settings.Defaults
	cfg.APILanguage = "de"

	_, err := f.svc.Save(ctx, cfg, SaveRequest{Mode: ModeCreate, Input: validInput()})
	require.NoError(t, err)
	assert.Equal(t, geocode.Params{Language: "de"}, f.geocoder.lastParams)

	cfg.APIRegion = "at"
	cfg.APIKey = "new-key"

	_, err = f.svc.Save(ctx, cfg, SaveRequest{Mode: ModeCreate, Input: validInput()})
	require.NoError(t, err)
	assert.Equal(t, geocode.Params{Language: "de", Region: "at", APIKey: "new-key"}, f.geocoder.lastParams)
}

func TestSaveUpdate(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Save(ctx, settings.Defaults, SaveRequest{Mode: ModeCreate, Input: validInput()})
	require.NoError(t, err)

	f.clock.Advance(time.Hour)

	in := validInput()
	in.Name = "Renamed"
	in.Lat, in.Lng = "10", "20"
	in.Active = false

	res, err := f.svc.Save(ctx, settings.Defaults, SaveRequest{Mode: ModeUpdate, ID: created.Store.ID, Input: in})
	require.NoError(t, err)
	assert.Equal(t, MessageUpdated, res.Message)
	assert.True(t, res.ClearInput)
	assert.Equal(t, 1, f.geocoder.calls, "submitted coordinates skip geocoding")

	got, err := f.repo.Get(ctx, created.Store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.False(t, got.Active)
	assert.Equal(t, epoch, got.CreatedAt)
	assert.Equal(t, epoch.Add(time.Hour), got.UpdatedAt)
	assert.Equal(t, 1, storedCount(t, f.repo))
}

func TestSaveValidationErrorWritesNothing(t *testing.T) {
	f := newServiceFixture(t)
	in := validInput()
	in.Country = ""

	_, err := f.svc.Save(context.Background(), settings.Defaults, SaveRequest{Mode: ModeCreate, Input: in})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, f.geocoder.calls)
	assert.Equal(t, 0, storedCount(t, f.repo))
}

func TestSaveGeocodeErrorWritesNothing(t *testing.T) {
	f := newServiceFixture(t)
	f.geocoder.err = &geocode.GeocodingError{Type: geocode.ErrorTypeQuotaExceeded, Message: geocode.MessageQuotaExceeded}

	_, err := f.svc.Save(context.Background(), settings.Defaults, SaveRequest{Mode: ModeCreate, Input: validInput()})
	assert.True(t, geocode.IsQuotaExceededError(err))
	assert.Equal(t, 0, storedCount(t, f.repo))
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.StoreWrites.WithLabelValues("create", "geocode_error")), 0)
}

func TestSaveUpdateMissingStore(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Save(context.Background(), settings.Defaults, SaveRequest{Mode: ModeUpdate, ID: 404, Input: validInput()})
	require.Error(t, err)
	assert.True(t, IsPersistenceError(err, UpdateFailed))
	assert.True(t, errors.Is(err, ErrNotFound))
}

type failingRepository struct {
	Repository
}

func (failingRepository) Insert(context.Context, *Store) (int64, error) {
	return 0, errors.New("disk full")
}

func TestSaveInsertFailure(t *testing.T) {
	_, repo := setupTestDB(t)
	svc := NewService(Dependencies{Repository: failingRepository{repo}, Geocoder: okGeocoder()})

	_, err := svc.Save(context.Background(), settings.Defaults, SaveRequest{Mode: ModeCreate, Input: validInput()})

	var pErr *PersistenceError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, InsertFailed, pErr.Kind)
	assert.Contains(t, pErr.Error(), "There was a problem saving the new store details")
}

func TestServiceDelete(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	res, err := f.svc.Save(ctx, settings.Defaults, SaveRequest{Mode: ModeCreate, Input: validInput()})
	require.NoError(t, err)

	id := res.Store.ID

	err = f.svc.Delete(ctx, id, "bogus")
	assert.True(t, IsPersistenceError(err, DeleteFailed))
	assert.Equal(t, 1, storedCount(t, f.repo))

	err = f.svc.Delete(ctx, id, f.auth.Token(id+1))
	assert.True(t, IsPersistenceError(err, DeleteFailed))

	require.NoError(t, f.svc.Delete(ctx, id, f.auth.Token(id)))
	assert.Equal(t, 0, storedCount(t, f.repo))

	// already gone
	err = f.svc.Delete(ctx, id, f.auth.Token(id))
	assert.True(t, IsPersistenceError(err, DeleteFailed))
}

func TestDeleteWithoutAuthorizer(t *testing.T) {
	_, repo := setupTestDB(t)
	svc := NewService(Dependencies{Repository: repo})

	err := svc.Delete(context.Background(), 1, "anything")
	assert.True(t, IsPersistenceError(err, DeleteFailed))
}

func TestList(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	page, err := f.svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Stores)
	assert.NotNil(t, page.Stores)

	for range 3 {
		_, err := f.svc.Save(ctx, settings.Defaults, SaveRequest{Mode: ModeCreate, Input: validInput()})
		require.NoError(t, err)
	}

	page, err = f.svc.List(ctx, ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Stores, 2)
	assert.Equal(t, 3, page.Total)
}
