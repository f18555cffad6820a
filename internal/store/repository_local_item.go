// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
)

// localItemRepository is a key/value table in the device SQLite file.
type localItemRepository struct {
	db    *DB
	table string
}

// NewLocalItemRepository constructs a [LocalItemRepository] over table,
// usually [TableSecureItems] or [TableLocalItems].
func NewLocalItemRepository(db *DB, table string) LocalItemRepository {
	return &localItemRepository{
		db:    db,
		table: table,
	}
}

func (r *localItemRepository) GetItem(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetItemQuery(r.db.builder, r.table, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.GetItem").Str("table", r.table).Msg("failed to read local item")
		return "", r.db.wrap(ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *localItemRepository) SetItem(ctx context.Context, key, value string) error {
	query, args, err := buildSetItemQuery(r.db.builder, r.table, key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.SetItem").Str("table", r.table).Msg("failed to write local item")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}

func (r *localItemRepository) DeleteItem(ctx context.Context, key string) error {
	query, args, err := buildDeleteItemQuery(r.db.builder, r.table, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localItemRepository.DeleteItem").Str("table", r.table).Msg("failed to delete local item")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}
