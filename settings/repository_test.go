// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sql.DB, Repository) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	repo := NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db, repo
}

func TestLoadWithoutSavedSettings(t *testing.T) {
	db, repo := setupTestDB(t)
	defer db.Close()

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(Defaults, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReplacesBlob(t *testing.T) {
	db, repo := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()

	first, _ := Sanitize(fullRaw())
	require.NoError(t, repo.Save(ctx, first))

	second, _ := Sanitize(Raw{KeyMapType: "satellite"})
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	var rows int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM options`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	db, repo := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`INSERT INTO options (name, value) VALUES (?, ?)`, OptionName, `{"map_type": "terrain"}`)
	require.NoError(t, err)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "terrain", got.MapType)
	assert.Equal(t, Defaults.SearchLabel, got.SearchLabel)
	assert.Equal(t, Defaults.Height, got.Height)
}

func TestLoadCorruptBlob(t *testing.T) {
	db, repo := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`INSERT INTO options (name, value) VALUES (?, ?)`, OptionName, `{`)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding settings")
}
