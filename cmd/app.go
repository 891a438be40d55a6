// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver

	"github.com/jcodagnone/storelocator/geocode"
	"github.com/jcodagnone/storelocator/observability"
	"github.com/jcodagnone/storelocator/settings"
	"github.com/jcodagnone/storelocator/store"
	"github.com/jcodagnone/storelocator/utils/httputils"
)

const (
	dbFile       = "storelocator.duckdb"
	apiKeyEnv    = "GOOGLE_MAPS_API_KEY"
	secretEnv    = "STORELOCATOR_SECRET"
	userAgentFmt = "storelocator/%s"
)

// RootOptions are the flags shared by every command.
type RootOptions struct {
	// DbPath is the directory holding the database
	DbPath string

	// Enables tracing of outgoing HTTP requests
	EnableHTTPTrace bool

	GeocodeTimeout time.Duration

	// GCPProject is the fallback project for the API key lookup
	GCPProject string
}

var rootOptions = &RootOptions{}

// app holds everything a command needs to run the store pipeline.
type app struct {
	db         *sql.DB
	stores     store.Repository
	settings   settings.Repository
	service    *store.Service
	authorizer *store.TokenAuthorizer
	metrics    *observability.Metrics
}

func openDB() (*sql.DB, error) {
	if err := os.MkdirAll(rootOptions.DbPath, 0o750); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := sql.Open("duckdb", filepath.Join(rootOptions.DbPath, dbFile))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return db, nil
}

// newApp opens the database, creates the schema and wires the service.
// metrics may be nil.
func newApp(ctx context.Context, metrics *observability.Metrics) (*app, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}

	a := &app{
		db:       db,
		stores:   store.NewRepository(db),
		settings: settings.NewRepository(db),
		metrics:  metrics,
	}

	if err := a.settings.CreateSchema(); err != nil {
		db.Close()

		return nil, fmt.Errorf("creating settings schema: %w", err)
	}

	if err := a.stores.CreateSchema(); err != nil {
		db.Close()

		return nil, fmt.Errorf("creating stores schema: %w", err)
	}

	cfg, err := a.settings.Load(ctx)
	if err != nil {
		db.Close()

		return nil, err
	}

	secret, err := deleteSecret()
	if err != nil {
		db.Close()

		return nil, err
	}

	a.authorizer = store.NewTokenAuthorizer(secret)
	a.service = store.NewService(store.Dependencies{
		Repository: a.stores,
		Geocoder:   newGeocoder(ctx, cfg, metrics),
		Authorizer: a.authorizer,
		Metrics:    metrics,
	})

	return a, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func deleteSecret() ([]byte, error) {
	if s := os.Getenv(secretEnv); s != "" {
		return []byte(s), nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating delete token secret: %w", err)
	}

	return secret, nil
}

func traceWriter() io.Writer {
	if rootOptions.EnableHTTPTrace {
		return os.Stderr
	}

	return nil
}

// apiKey returns the fallback geocoding key, used while the saved settings
// carry none. It comes from the environment or, when the settings have no key
// either, from Application Default Credentials.
func apiKey(ctx context.Context, cfg settings.Settings) string {
	if key := os.Getenv(apiKeyEnv); key != "" {
		return key
	}

	// the saved key is sent with every request
	if cfg.APIKey != "" {
		return ""
	}

	log.Printf("%s is not set. Attempting to retrieve via ADC...", apiKeyEnv)

	key, err := geocode.APIKeyFromADC(ctx, geocode.KeyDisplayName, rootOptions.GCPProject)
	if err != nil {
		log.Printf("Failed to retrieve API key via ADC: %v", err)

		return ""
	}

	log.Println("Retrieved Google Maps API key via ADC")

	return key
}

// newGeocoder builds the Google client. Region and key from the saved
// settings are passed on each call, see store.GeocodeParams.
func newGeocoder(ctx context.Context, cfg settings.Settings, metrics *observability.Metrics) geocode.Geocoder {
	return geocode.NewGoogleMapsGeocoder(geocode.GoogleOptions{
		APIKey:    apiKey(ctx, cfg),
		Timeout:   rootOptions.GeocodeTimeout,
		Transport: httputils.NewTransport(nil, fmt.Sprintf(userAgentFmt, Version), traceWriter()),
		Metrics:   metrics,
	})
}
