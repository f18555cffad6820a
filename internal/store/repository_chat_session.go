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

// chatSessionRepository is the PostgreSQL-backed implementation of
// [ChatSessionRepository].
type chatSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewChatSessionRepository constructs a [ChatSessionRepository] backed by db.
func NewChatSessionRepository(db *DB, logger *logger.Logger) ChatSessionRepository {
	return &chatSessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *chatSessionRepository) GetLatestSession(ctx context.Context, userID string) (models.ChatSessionRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLatestSessionQuery(r.db.builder, userID)
	if err != nil {
		return models.ChatSessionRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanChatSessionRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatSessionRow{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "chatSessionRepository.GetLatestSession").Str("user_id", userID).Msg("failed to load chat session")
		return models.ChatSessionRow{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return row, nil
}

func (r *chatSessionRepository) UpsertSession(ctx context.Context, row models.ChatSessionRow) (models.ChatSessionRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(r.db.builder, row)
	if err != nil {
		return models.ChatSessionRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanChatSessionRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// the id belongs to another user
		log.Warn().Str("func", "chatSessionRepository.UpsertSession").Str("user_id", row.UserID).Str("session_id", row.ID).Msg("chat session is owned by another user")
		return models.ChatSessionRow{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "chatSessionRepository.UpsertSession").Str("user_id", row.UserID).Str("session_id", row.ID).Msg("failed to upsert chat session")
		return models.ChatSessionRow{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *chatSessionRepository) ClearSummaries(ctx context.Context, userID string) error {
	query, args, err := buildClearSummariesQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatSessionRepository.ClearSummaries").Str("user_id", userID).Msg("failed to clear session summaries")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}

func (r *chatSessionRepository) DeleteAllSessions(ctx context.Context, userID string) error {
	query, args, err := buildDeleteAllSessionsQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatSessionRepository.DeleteAllSessions").Str("user_id", userID).Msg("failed to delete chat sessions")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}
