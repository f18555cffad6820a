// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "users_data" table.
type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile loads the profile row of userID.
//
// Error handling:
//   - no row → [ErrProfileNotFound].
//   - driver error → [ErrExecutingQuery] (plus [ErrTransient] when retryable).
func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProfileQuery(r.db.builder, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.UserProfile
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&profile.ID, &profile.EncryptionKeyCheck)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "profileRepository.GetProfile").Str("user_id", userID).Msg("failed to load profile")
		return models.UserProfile{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return profile, nil
}

// SetKeyCheckIfAbsent writes keyCheck unless the profile already carries
// one. The check and the write happen in one statement.
func (r *profileRepository) SetKeyCheckIfAbsent(ctx context.Context, userID, keyCheck string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetKeyCheckIfAbsentQuery(r.db.builder, userID, keyCheck)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.SetKeyCheckIfAbsent").Str("user_id", userID).Msg("failed to store key check")
		return false, r.db.wrap(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, r.db.wrap(ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// ClearKeyCheck nulls the key-check record. A missing profile is not an error.
func (r *profileRepository) ClearKeyCheck(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearKeyCheckQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "profileRepository.ClearKeyCheck").Str("user_id", userID).Msg("failed to clear key check")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	return nil
}
