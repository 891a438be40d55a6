// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// OptionName is the name of the blob holding the settings.
const OptionName = "wpsl_settings"

// Repository persists the settings as a single blob that is replaced
// wholesale on every save.
type Repository interface {
	// CreateSchema creates the options table
	CreateSchema() error

	// Load returns the stored settings, Defaults when nothing was saved yet
	Load(ctx context.Context) (Settings, error)

	// Save replaces the stored settings
	Save(ctx context.Context, s Settings) error
}

type sqlSettingsRepository struct {
	db *sql.DB
}

// NewRepository creates a settings repository backed by db.
func NewRepository(db *sql.DB) Repository {
	return &sqlSettingsRepository{db: db}
}

func (r *sqlSettingsRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS options (
			name VARCHAR PRIMARY KEY,
			value VARCHAR NOT NULL
		);
	`)

	return err
}

func (r *sqlSettingsRepository) Load(ctx context.Context) (Settings, error) {
	var blob string

	err := r.db.QueryRowContext(ctx, `SELECT value FROM options WHERE name = ?`, OptionName).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return Defaults, nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("loading settings: %w", err)
	}

	// Keys missing from an older blob keep their default.
	s := Defaults
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}

	return s, nil
}

func (r *sqlSettingsRepository) Save(ctx context.Context, s Settings) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO options (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value
	`, OptionName, string(blob))
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}
