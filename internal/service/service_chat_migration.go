// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/internal/validators"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const (
	legacyMessagesPrefix = "therapyst-messages-"
	legacySummaryPrefix  = "therapyst-summary-"
)

// LegacyMessagesKey returns the device-local key of the plaintext history.
func LegacyMessagesKey(userID string) string {
	return legacyMessagesPrefix + userID
}

// LegacySummaryKey returns the device-local key of the plaintext summary.
func LegacySummaryKey(userID string) string {
	return legacySummaryPrefix + userID
}

type chatMigrationService struct {
	chat      ChatService
	device    store.LocalItemRepository
	validator validators.Validator
}

func NewChatMigrationService(chat ChatService, device store.LocalItemRepository, validator validators.Validator) ChatMigrationService {
	return &chatMigrationService{
		chat:      chat,
		device:    device,
		validator: validator,
	}
}

// MigrateLegacyChat re-saves the plaintext history through the chat
// service, replacing whatever is stored remotely, then moves the summary
// into the session. The legacy keys are removed once anything migrated.
func (m *chatMigrationService) MigrateLegacyChat(ctx context.Context, userID string) (models.ChatMigrationResult, error) {
	log := logger.FromContext(ctx).Component("chat_migration")
	var result models.ChatMigrationResult

	legacy, err := m.loadMessages(ctx, userID)
	if err != nil && !errors.Is(err, ErrLegacyChatCorrupted) {
		return result, err
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "chatMigrationService.MigrateLegacyChat").Str("user_id", userID).Msg("skipping unreadable legacy messages")
	}

	if len(legacy) > 0 {
		if err = m.chat.ClearMessages(ctx, userID); err != nil {
			return result, err
		}

		for i, msg := range legacy {
			if m.validator.Validate(ctx, msg) != nil {
				log.Debug().Str("func", "chatMigrationService.MigrateLegacyChat").Str("user_id", userID).Int("index", i).Msg("skipping legacy message without role or content")
				continue
			}
			_, err = m.chat.SaveMessage(ctx, userID, models.ChatMessage{
				Content: msg.Content,
				Role:    msg.Role,
				State:   msg.State,
				Source:  msg.Source,
			})
			if err != nil {
				log.Err(err).Str("func", "chatMigrationService.MigrateLegacyChat").Str("user_id", userID).Int("index", i).Msg("failed to migrate legacy message")
				return result, fmt.Errorf("migrate legacy message %d: %w", i, err)
			}
			result.MigratedMessages++
		}
	}

	result.MigratedSummary = m.migrateSummary(ctx, userID)

	if result.MigratedMessages > 0 || result.MigratedSummary {
		for _, key := range []string{LegacyMessagesKey(userID), LegacySummaryKey(userID)} {
			if err = m.device.DeleteItem(ctx, key); err != nil {
				log.Err(err).Str("func", "chatMigrationService.MigrateLegacyChat").Str("user_id", userID).Msg("failed to remove legacy chat data")
				return result, fmt.Errorf("remove legacy chat data: %w", err)
			}
		}
	}

	log.Info().Str("func", "chatMigrationService.MigrateLegacyChat").Str("user_id", userID).
		Int("messages", result.MigratedMessages).Bool("summary", result.MigratedSummary).Msg("legacy chat migration finished")
	return result, nil
}

func (m *chatMigrationService) loadMessages(ctx context.Context, userID string) ([]models.LegacyChatMessage, error) {
	raw, err := m.device.GetItem(ctx, LegacyMessagesKey(userID))
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read legacy messages: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var messages []models.LegacyChatMessage
	if err = json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLegacyChatCorrupted, err)
	}
	return messages, nil
}

// migrateSummary reports whether a legacy summary was moved into the
// session. Failures are logged and leave the summary in place.
func (m *chatMigrationService) migrateSummary(ctx context.Context, userID string) bool {
	log := logger.FromContext(ctx)

	summary, err := m.device.GetItem(ctx, LegacySummaryKey(userID))
	if err != nil || summary == "" {
		return false
	}

	session, err := m.chat.GetSession(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "chatMigrationService.migrateSummary").Str("user_id", userID).Msg("failed to load chat session")
		return false
	}

	session.Summary = summary
	if _, err = m.chat.UpdateSession(ctx, userID, session); err != nil {
		log.Warn().Err(err).Str("func", "chatMigrationService.migrateSummary").Str("user_id", userID).Msg("failed to migrate summary")
		return false
	}
	return true
}
