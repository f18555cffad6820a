// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/models"
)

// chatMessageRepository is the PostgreSQL-backed implementation of
// [ChatMessageRepository].
type chatMessageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewChatMessageRepository constructs a [ChatMessageRepository] backed by db.
func NewChatMessageRepository(db *DB, logger *logger.Logger) ChatMessageRepository {
	return &chatMessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *chatMessageRepository) CreateMessage(ctx context.Context, row models.ChatMessageRow) (models.ChatMessageRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateMessageQuery(r.db.builder, row)
	if err != nil {
		return models.ChatMessageRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanChatMessageRow(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "chatMessageRepository.CreateMessage").Str("user_id", row.UserID).Msg("failed to insert chat message")
		return models.ChatMessageRow{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *chatMessageRepository) ListMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessageRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesQuery(r.db.builder, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "chatMessageRepository.ListMessages").Str("user_id", userID).Msg("failed to execute query for chat messages")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ChatMessageRow, 0, limit)
	for rows.Next() {
		row, scanErr := scanChatMessageRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "chatMessageRepository.ListMessages").Str("user_id", userID).Msg("failed to scan chat message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (r *chatMessageRepository) CountMessages(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountMessagesQuery(r.db.builder, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "chatMessageRepository.CountMessages").Str("user_id", userID).Msg("failed to count chat messages")
		return 0, r.db.wrap(ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *chatMessageRepository) DeleteOldestMessages(ctx context.Context, userID string, n int) error {
	if n <= 0 {
		return nil
	}

	query, args, err := buildDeleteOldestMessagesQuery(r.db.builder, userID, n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "chatMessageRepository.DeleteOldestMessages", userID, query, args)
}

func (r *chatMessageRepository) DeleteAllMessages(ctx context.Context, userID string) error {
	query, args, err := buildDeleteAllMessagesQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "chatMessageRepository.DeleteAllMessages", userID, query, args)
}

func (r *chatMessageRepository) exec(ctx context.Context, funcName, userID, query string, args []any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to delete chat messages")
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}
