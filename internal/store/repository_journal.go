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

// journalRepository is the PostgreSQL-backed implementation of
// [JournalRepository]. Every query is scoped by user_id so one user can
// never read or modify another user's rows.
type journalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *journalRepository) CreateEntry(ctx context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateEntryQuery(r.db.builder, row)
	if err != nil {
		return models.JournalEntryRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanJournalRow(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.CreateEntry").
			Str("user_id", row.UserID).
			Str("entry_id", row.ID).
			Msg("failed to insert journal entry")
		return models.JournalEntryRow{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *journalRepository) GetEntry(ctx context.Context, userID, id string) (models.JournalEntryRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(r.db.builder, userID, id)
	if err != nil {
		return models.JournalEntryRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanJournalRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntryRow{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "journalRepository.GetEntry").Str("user_id", userID).Str("entry_id", id).Msg("failed to load journal entry")
		return models.JournalEntryRow{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return row, nil
}

func (r *journalRepository) ListEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntryRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.ListEntries").Str("user_id", userID).Msg("failed to execute query for journal entries")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.JournalEntryRow, 0, limit)
	for rows.Next() {
		row, scanErr := scanJournalRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "journalRepository.ListEntries").Str("user_id", userID).Msg("failed to scan journal entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "journalRepository.ListEntries").Str("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (r *journalRepository) UpdateEntry(ctx context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(r.db.builder, row)
	if err != nil {
		return models.JournalEntryRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanJournalRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntryRow{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "journalRepository.UpdateEntry").Str("user_id", row.UserID).Str("entry_id", row.ID).Msg("failed to update journal entry")
		return models.JournalEntryRow{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *journalRepository) DeleteEntry(ctx context.Context, userID, id string) error {
	affected, err := r.delete(ctx, "journalRepository.DeleteEntry", userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *journalRepository) DeleteAllEntries(ctx context.Context, userID string) error {
	_, err := r.delete(ctx, "journalRepository.DeleteAllEntries", userID)
	return err
}

func (r *journalRepository) delete(ctx context.Context, funcName, userID string, ids ...string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntriesQuery(r.db.builder, userID, ids...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to delete journal entries")
		return 0, r.db.wrap(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, r.db.wrap(ErrExecutingStatement, err)
	}
	return affected, nil
}
