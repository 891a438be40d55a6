// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/jcodagnone/storelocator/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sql.DB, Repository) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db, repo
}

func sampleStore(t *testing.T, name string) *Store {
	t.Helper()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &Store{
		Name:        name,
		Street:      "12 Main St",
		City:        "Springfield",
		State:       "IL",
		Zip:         "62701",
		Country:     "United States",
		CountryISO:  "US",
		Point:       spatial.Point{Lat: 39.7817, Lng: -89.6501},
		Description: "Books\nand coffee",
		Phone:       "555-0100",
		Hours:       "Mon-Fri 9-5",
		ThumbID:     3,
		Active:      true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	cells, err := s.Point.H3Cells()
	require.NoError(t, err)

	s.H3 = cells

	return s
}

func TestCreateSchema(t *testing.T) {
	db, repo := setupTestDB(t)

	var tableName string

	err := db.QueryRow("SELECT table_name FROM information_schema.tables WHERE table_name = 'stores'").Scan(&tableName)
	require.NoError(t, err, "table not created")
	assert.Equal(t, "stores", tableName)

	// idempotent
	require.NoError(t, repo.CreateSchema())
}

func TestInsertAndGet(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	want := sampleStore(t, "Main Street Books")

	id, err := repo.Insert(ctx, want)
	require.NoError(t, err)
	assert.Positive(t, id)

	want.ID = id

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, sampleStore(t, "One"))
	require.NoError(t, err)

	second, err := repo.Insert(ctx, sampleStore(t, "Two"))
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestUpdate(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	s := sampleStore(t, "Old Name")
	id, err := repo.Insert(ctx, s)
	require.NoError(t, err)

	s.ID = id
	s.Name = "New Name"
	s.Active = false
	s.Point = spatial.Point{Lat: 1, Lng: 2}
	s.UpdatedAt = s.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.False(t, got.Active)
	assert.Equal(t, spatial.Point{Lat: 1, Lng: 2}, got.Point)
	assert.Equal(t, s.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, s.CreatedAt, got.CreatedAt)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	s := sampleStore(t, "Ghost")
	s.ID = 99

	assert.True(t, errors.Is(repo.Update(ctx, s), ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, 99), ErrNotFound))

	_, err := repo.Get(ctx, 99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDelete(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, sampleStore(t, "Short Lived"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListAndCount(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	for i, name := range []string{"A", "B", "C", "D"} {
		s := sampleStore(t, name)
		s.Active = i%2 == 0

		_, err := repo.Insert(ctx, s)
		require.NoError(t, err)
	}

	active := true
	inactive := false

	tests := []struct {
		name   string
		filter ListFilter
		want   []string
		total  int
	}{
		{"all", ListFilter{}, []string{"A", "B", "C", "D"}, 4},
		{"active", ListFilter{Active: &active}, []string{"A", "C"}, 2},
		{"inactive", ListFilter{Active: &inactive}, []string{"B", "D"}, 2},
		{"limit", ListFilter{Limit: 2}, []string{"A", "B"}, 4},
		{"limit and offset", ListFilter{Limit: 2, Offset: 3}, []string{"D"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			var names []string
			for _, s := range stores {
				names = append(names, s.Name)
			}

			assert.Equal(t, tt.want, names)

			total, err := repo.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
		})
	}
}
