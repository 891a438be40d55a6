// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Repository is the persistence port for stores.
type Repository interface {
	// CreateSchema creates the stores table and its id sequence
	CreateSchema() error

	// Insert stores s and returns the id it was given
	Insert(ctx context.Context, s *Store) (int64, error)

	// Update replaces every column of the store with id s.ID except
	// created_at. Returns ErrNotFound when there is no such store.
	Update(ctx context.Context, s *Store) error

	// Delete removes the store. Returns ErrNotFound when there is no such store.
	Delete(ctx context.Context, id int64) error

	Get(ctx context.Context, id int64) (*Store, error)
	List(ctx context.Context, filter ListFilter) ([]*Store, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter narrows List and Count. Zero values mean no restriction.
type ListFilter struct {
	Active *bool
	Limit  int
	Offset int
}

type sqlStoreRepository struct {
	db *sql.DB
}

// NewRepository creates a store repository backed by db.
func NewRepository(db *sql.DB) Repository {
	return &sqlStoreRepository{db: db}
}

// writeColumns are the columns set on insert, in the order of storeArgs.
var writeColumns = []string{
	"store", "street", "city", "state", "zip", "country", "country_iso",
	"lat", "lng", "description", "phone", "fax", "url", "email", "hours",
	"thumb_id", "active", "created_at", "updated_at",
	"h3_res1", "h3_res2", "h3_res3", "h3_res4", "h3_res5", "h3_res6", "h3_res7", "h3_res8",
}

var selectColumns = "id, " + strings.Join(writeColumns, ", ")

func (r *sqlStoreRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE SEQUENCE IF NOT EXISTS stores_seq START 1;
		CREATE TABLE IF NOT EXISTS stores (
			id BIGINT PRIMARY KEY DEFAULT nextval('stores_seq'),
			store VARCHAR NOT NULL,
			street VARCHAR NOT NULL,
			city VARCHAR NOT NULL,
			state VARCHAR NOT NULL DEFAULT '',
			zip VARCHAR NOT NULL,
			country VARCHAR NOT NULL,
			country_iso VARCHAR NOT NULL DEFAULT '',
			lat DOUBLE NOT NULL,
			lng DOUBLE NOT NULL,
			description VARCHAR NOT NULL DEFAULT '',
			phone VARCHAR NOT NULL DEFAULT '',
			fax VARCHAR NOT NULL DEFAULT '',
			url VARCHAR NOT NULL DEFAULT '',
			email VARCHAR NOT NULL DEFAULT '',
			hours VARCHAR NOT NULL DEFAULT '',
			thumb_id BIGINT NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			h3_res1 BIGINT NOT NULL DEFAULT 0,
			h3_res2 BIGINT NOT NULL DEFAULT 0,
			h3_res3 BIGINT NOT NULL DEFAULT 0,
			h3_res4 BIGINT NOT NULL DEFAULT 0,
			h3_res5 BIGINT NOT NULL DEFAULT 0,
			h3_res6 BIGINT NOT NULL DEFAULT 0,
			h3_res7 BIGINT NOT NULL DEFAULT 0,
			h3_res8 BIGINT NOT NULL DEFAULT 0
		);
	`)

	return err
}

func storeArgs(s *Store) []any {
	args := []any{
		s.Name, s.Street, s.City, s.State, s.Zip, s.Country, s.CountryISO,
		s.Point.Lat, s.Point.Lng, s.Description, s.Phone, s.Fax, s.URL, s.Email, s.Hours,
		s.ThumbID, s.Active, s.CreatedAt, s.UpdatedAt,
	}
	for _, cell := range s.H3 {
		args = append(args, cell)
	}

	return args
}

func (r *sqlStoreRepository) Insert(ctx context.Context, s *Store) (int64, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(writeColumns)), ", ")
	query := fmt.Sprintf("INSERT INTO stores (%s) VALUES (%s) RETURNING id",
		strings.Join(writeColumns, ", "), placeholders)

	var id int64
	if err := r.db.QueryRowContext(ctx, query, storeArgs(s)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting store: %w", err)
	}

	return id, nil
}

func (r *sqlStoreRepository) Update(ctx context.Context, s *Store) error {
	sets := make([]string, 0, len(writeColumns))
	args := make([]any, 0, len(writeColumns))

	for i, arg := range storeArgs(s) {
		if writeColumns[i] == "created_at" {
			continue
		}

		sets = append(sets, writeColumns[i]+" = ?")
		args = append(args, arg)
	}

	args = append(args, s.ID)
	query := fmt.Sprintf("UPDATE stores SET %s WHERE id = ?", strings.Join(sets, ", "))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating store %d: %w", s.ID, err)
	}

	return checkAffected(res, s.ID)
}

func (r *sqlStoreRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting store %d: %w", id, err)
	}

	return checkAffected(res, id)
}

func checkAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store %d: %w", id, err)
	}

	if n == 0 {
		return fmt.Errorf("store %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *sqlStoreRepository) Get(ctx context.Context, id int64) (*Store, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM stores WHERE id = ?", id)

	s, err := scanStore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store %d: %w", id, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("loading store %d: %w", id, err)
	}

	return s, nil
}

func (f ListFilter) where() (string, []any) {
	if f.Active == nil {
		return "", nil
	}

	return " WHERE active = ?", []any{*f.Active}
}

func (r *sqlStoreRepository) List(ctx context.Context, filter ListFilter) ([]*Store, error) {
	where, args := filter.where()
	query := "SELECT " + selectColumns + " FROM stores" + where + " ORDER BY id"

	if filter.Limit > 0 {
		query += " LIMIT ?"

		args = append(args, filter.Limit)
	}

	if filter.Offset > 0 {
		query += " OFFSET ?"

		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var stores []*Store

	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}

		stores = append(stores, s)
	}

	return stores, rows.Err()
}

func (r *sqlStoreRepository) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := filter.where()

	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stores"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting stores: %w", err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStore(row scanner) (*Store, error) {
	var s Store

	dest := []any{
		&s.ID, &s.Name, &s.Street, &s.City, &s.State, &s.Zip, &s.Country, &s.CountryISO,
		&s.Point.Lat, &s.Point.Lng, &s.Description, &s.Phone, &s.Fax, &s.URL, &s.Email, &s.Hours,
		&s.ThumbID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	}
	for i := range s.H3 {
		dest = append(dest, &s.H3[i])
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()

	return &s, nil
}
