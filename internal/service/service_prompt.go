// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
)

// templateVariable matches "{{ NAME }}" with optional inner spaces.
var templateVariable = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

type promptService struct {
	prompts store.PromptRepository

	mu    sync.RWMutex
	cache map[string]string
}

func NewPromptService(prompts store.PromptRepository) PromptService {
	return &promptService{
		prompts: prompts,
		cache:   make(map[string]string),
	}
}

func (p *promptService) Prompt(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidPromptName
	}

	p.mu.RLock()
	cached, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return cached, nil
	}

	prompt, err := p.prompts.GetPrompt(ctx, name)
	if errors.Is(err, store.ErrPromptNotFound) {
		return "", fmt.Errorf("%w: %q", ErrPromptNotFound, name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "promptService.Prompt").Str("prompt", name).Msg("failed to load prompt")
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	if prompt.Prompt != "" {
		p.mu.Lock()
		p.cache[name] = prompt.Prompt
		p.mu.Unlock()
	}
	return prompt.Prompt, nil
}

// ReplaceTemplateVariables substitutes every "{{ NAME }}" found in vars.
// Unknown names are left as they are.
func (p *promptService) ReplaceTemplateVariables(template string, vars map[string]string) string {
	return templateVariable.ReplaceAllStringFunc(template, func(match string) string {
		name := templateVariable.FindStringSubmatch(match)[1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}

func (p *promptService) ClearCache() {
	p.mu.Lock()
	clear(p.cache)
	p.mu.Unlock()
}
