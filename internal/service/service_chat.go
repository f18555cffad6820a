// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/internal/validators"
	"github.com/MKhiriev/go-psyche-vault/models"
)

// MessageRetentionLimit is the number of chat messages kept per user.
const MessageRetentionLimit = 50

type chatService struct {
	messages   store.ChatMessageRepository
	sessions   store.ChatSessionRepository
	encryption EncryptionService
	cipher     crypto.EnvelopeCipher
	validator  validators.Validator
}

func NewChatService(messages store.ChatMessageRepository, sessions store.ChatSessionRepository, encryption EncryptionService, cipher crypto.EnvelopeCipher, validator validators.Validator) ChatService {
	return &chatService{
		messages:   messages,
		sessions:   sessions,
		encryption: encryption,
		cipher:     cipher,
		validator:  validator,
	}
}

func (c *chatService) GetSession(ctx context.Context, userID string) (models.ChatSession, error) {
	key, err := c.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return models.ChatSession{}, err
	}

	row, err := c.sessions.GetLatestSession(ctx, userID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.ChatSession{UserID: userID}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.GetSession").Str("user_id", userID).Msg("failed to load chat session")
		return models.ChatSession{}, fmt.Errorf("get chat session: %w", err)
	}

	return c.decryptSession(key, row)
}

func (c *chatService) UpdateSession(ctx context.Context, userID string, session models.ChatSession) (models.ChatSession, error) {
	log := logger.FromContext(ctx)

	key, err := c.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return models.ChatSession{}, err
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	row := models.ChatSessionRow{ID: session.ID, UserID: userID}
	if row.SummaryEnc, err = c.encryptOptional(key, session.Summary); err != nil {
		log.Err(err).Str("func", "chatService.UpdateSession").Str("user_id", userID).Msg("failed to encrypt session summary")
		return models.ChatSession{}, err
	}

	saved, err := c.sessions.UpsertSession(ctx, row)
	if err != nil {
		log.Err(err).Str("func", "chatService.UpdateSession").Str("user_id", userID).Msg("failed to save chat session")
		return models.ChatSession{}, fmt.Errorf("save chat session: %w", err)
	}

	return c.decryptSession(key, saved)
}

func (c *chatService) GetMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	key, err := c.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := c.messages.ListMessages(ctx, userID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.GetMessages").Str("user_id", userID).Msg("failed to list chat messages")
		return nil, fmt.Errorf("list chat messages: %w", err)
	}

	messages := make([]models.ChatMessage, 0, len(rows))
	for _, row := range rows {
		msg, err := c.decryptMessage(key, row)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "chatService.GetMessages").Str("user_id", userID).Str("message_id", row.ID).Int("content_length", len(row.ContentEnc)).Msg("failed to decrypt chat message")
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (c *chatService) SaveMessage(ctx context.Context, userID string, msg models.ChatMessage) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, msg); err != nil {
		return models.ChatMessage{}, &CodedError{
			Code:    models.ErrorCodeUnknown,
			Message: MsgInvalidMessage,
			Err:     fmt.Errorf("%w: %w", ErrInvalidMessage, err),
		}
	}

	key, err := c.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return models.ChatMessage{}, err
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.UserID = userID
	row, err := c.encryptMessage(key, msg)
	if err != nil {
		log.Err(err).Str("func", "chatService.SaveMessage").Str("user_id", userID).Msg("failed to encrypt chat message")
		return models.ChatMessage{}, err
	}

	created, err := c.messages.CreateMessage(ctx, row)
	if err != nil {
		log.Err(err).Str("func", "chatService.SaveMessage").Str("user_id", userID).Msg("failed to save chat message")
		return models.ChatMessage{}, fmt.Errorf("save chat message: %w", err)
	}

	saved, err := c.decryptMessage(key, created)
	if err != nil {
		return models.ChatMessage{}, err
	}

	c.trim(ctx, userID)
	return saved, nil
}

// trim deletes the oldest messages above [MessageRetentionLimit]. Failures
// are logged only; the insert has already succeeded.
func (c *chatService) trim(ctx context.Context, userID string) {
	log := logger.FromContext(ctx)

	count, err := c.messages.CountMessages(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "chatService.trim").Str("user_id", userID).Msg("failed to count chat messages")
		return
	}
	if count <= MessageRetentionLimit {
		return
	}

	excess := count - MessageRetentionLimit
	if err = c.messages.DeleteOldestMessages(ctx, userID, excess); err != nil {
		log.Warn().Err(err).Str("func", "chatService.trim").Str("user_id", userID).Int("excess", excess).Msg("failed to clean up old messages")
		return
	}
	log.Debug().Str("func", "chatService.trim").Str("user_id", userID).Int("deleted", excess).Msg("trimmed chat history")
}

func (c *chatService) ClearMessages(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := c.encryption.ReadyKey(ctx, userID); err != nil {
		return err
	}

	if err := c.messages.DeleteAllMessages(ctx, userID); err != nil {
		log.Err(err).Str("func", "chatService.ClearMessages").Str("user_id", userID).Msg("failed to delete chat messages")
		return fmt.Errorf("delete chat messages: %w", err)
	}
	if err := c.sessions.ClearSummaries(ctx, userID); err != nil {
		log.Err(err).Str("func", "chatService.ClearMessages").Str("user_id", userID).Msg("failed to clear chat session summary")
		return fmt.Errorf("clear chat session summary: %w", err)
	}
	return nil
}

func (c *chatService) encryptMessage(key []byte, msg models.ChatMessage) (models.ChatMessageRow, error) {
	row := models.ChatMessageRow{ID: msg.ID, UserID: msg.UserID}

	var err error
	if row.ContentEnc, err = c.cipher.Encrypt(key, msg.Content); err != nil {
		return models.ChatMessageRow{}, fmt.Errorf("encrypt message content: %w", err)
	}
	if row.RoleEnc, err = c.cipher.Encrypt(key, string(msg.Role)); err != nil {
		return models.ChatMessageRow{}, fmt.Errorf("encrypt message role: %w", err)
	}
	if row.StateEnc, err = c.encryptOptional(key, string(msg.State)); err != nil {
		return models.ChatMessageRow{}, err
	}
	if row.SourceEnc, err = c.encryptOptional(key, string(msg.Source)); err != nil {
		return models.ChatMessageRow{}, err
	}

	return row, nil
}

func (c *chatService) decryptMessage(key []byte, row models.ChatMessageRow) (models.ChatMessage, error) {
	msg := models.ChatMessage{
		ID:        row.ID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	content, err := c.cipher.Decrypt(key, row.ContentEnc)
	if err != nil {
		return models.ChatMessage{}, decryptError(err)
	}
	role, err := c.cipher.Decrypt(key, row.RoleEnc)
	if err != nil {
		return models.ChatMessage{}, decryptError(err)
	}
	state, err := c.decryptOptional(key, row.StateEnc)
	if err != nil {
		return models.ChatMessage{}, err
	}
	source, err := c.decryptOptional(key, row.SourceEnc)
	if err != nil {
		return models.ChatMessage{}, err
	}

	msg.Content = content
	msg.Role = models.ChatRole(role)
	msg.State = models.ChatState(state)
	msg.Source = models.ChatSource(source)
	return msg, nil
}

func (c *chatService) decryptSession(key []byte, row models.ChatSessionRow) (models.ChatSession, error) {
	summary, err := c.decryptOptional(key, row.SummaryEnc)
	if err != nil {
		return models.ChatSession{}, err
	}

	return models.ChatSession{
		ID:        row.ID,
		UserID:    row.UserID,
		Summary:   summary,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// encryptOptional maps an empty value to a NULL column.
func (c *chatService) encryptOptional(key []byte, value string) (*string, error) {
	if value == "" {
		return nil, nil
	}
	enc, err := c.cipher.Encrypt(key, value)
	if err != nil {
		return nil, fmt.Errorf("encrypt optional field: %w", err)
	}
	return &enc, nil
}

func (c *chatService) decryptOptional(key []byte, value *string) (string, error) {
	if value == nil || *value == "" {
		return "", nil
	}
	plain, err := c.cipher.Decrypt(key, *value)
	if err != nil {
		return "", decryptError(err)
	}
	return plain, nil
}
