// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const pathPrompts = "/prompts"

type promptRepository struct {
	*Client
}

// NewPromptRepository returns a [store.PromptRepository] over PostgREST.
func NewPromptRepository(c *Client) store.PromptRepository {
	return &promptRepository{Client: c}
}

func (r *promptRepository) GetPrompt(ctx context.Context, name string) (models.Prompt, error) {
	var prompts []models.Prompt
	_, err := r.do(r.request(ctx).
		SetQueryParam("select", "name,prompt").
		SetQueryParam("name", eq(name)),
		http.MethodGet, pathPrompts, &prompts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.promptRepository.GetPrompt").Str("prompt", name).Msg("failed to load prompt")
		return models.Prompt{}, err
	}
	if len(prompts) == 0 {
		return models.Prompt{}, store.ErrPromptNotFound
	}

	return prompts[0], nil
}
