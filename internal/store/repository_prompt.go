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

type promptRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPromptRepository constructs a [PromptRepository] backed by db.
func NewPromptRepository(db *DB, logger *logger.Logger) PromptRepository {
	return &promptRepository{
		db:     db,
		logger: logger,
	}
}

func (r *promptRepository) GetPrompt(ctx context.Context, name string) (models.Prompt, error) {
	query, args, err := buildGetPromptQuery(r.db.builder, name)
	if err != nil {
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var prompt models.Prompt
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&prompt.Name, &prompt.Prompt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Prompt{}, ErrPromptNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "promptRepository.GetPrompt").Str("prompt", name).Msg("failed to load prompt")
		return models.Prompt{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return prompt, nil
}
