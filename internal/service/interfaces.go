// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-psyche-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EncryptionService manages the key lifecycle of a user.
type EncryptionService interface {
	// Status derives the current encryption status. It is recomputed on
	// every call. When no key check exists yet a missing active key is
	// created, and a candidate key that verifies is promoted to active.
	Status(ctx context.Context, userID string) (models.EncryptionStatus, error)

	// ReadyKey returns the active key when the status is ready and a
	// [*CodedError] describing the required action otherwise.
	ReadyKey(ctx context.Context, userID string) ([]byte, error)

	// ConfirmBackup stores the key check for the active key. It is a no-op
	// when a key check already exists.
	ConfirmBackup(ctx context.Context, userID string) error

	// RecoveryKey exports the active key as a recovery token.
	RecoveryKey(ctx context.Context, userID string) (string, error)

	// ImportRecoveryKey stores the key of token as the candidate key and
	// re-derives the status. A token exported for another user is still
	// stored; the result reports the mismatch.
	ImportRecoveryKey(ctx context.Context, userID, token string) (models.ImportResult, error)

	// Reset deletes every encrypted row of the user, replaces the local
	// keys with a fresh active key and clears the key check.
	// The deleted data cannot be recovered.
	Reset(ctx context.Context, userID string) error

	// Gate returns where the user has to go before encrypted data can be
	// used on this device.
	Gate(ctx context.Context, userID string) (models.Destination, error)

	// MarkSetupComplete records on this device that key setup finished.
	MarkSetupComplete(ctx context.Context, userID string) error
}

// JournalService stores crying sessions with every sensitive field
// encrypted.
type JournalService interface {
	Create(ctx context.Context, userID string, entry models.JournalEntry) (models.JournalEntry, error)
	// List returns up to limit entries, newest cried_at first. A
	// non-positive limit means [DefaultListLimit].
	List(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error)
	Get(ctx context.Context, userID, id string) (models.JournalEntry, error)
	Update(ctx context.Context, userID string, entry models.JournalEntry) (models.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// ChatService stores the chat transcript and session summary encrypted.
type ChatService interface {
	// GetSession returns the latest session, or an empty one for the user
	// when none exists.
	GetSession(ctx context.Context, userID string) (models.ChatSession, error)
	UpdateSession(ctx context.Context, userID string, session models.ChatSession) (models.ChatSession, error)

	// GetMessages returns up to limit messages, oldest first.
	GetMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error)

	// SaveMessage stores msg and trims the history to [MessageRetentionLimit].
	SaveMessage(ctx context.Context, userID string, msg models.ChatMessage) (models.ChatMessage, error)

	// ClearMessages deletes every message and clears session summaries.
	ClearMessages(ctx context.Context, userID string) error
}

// PromptService loads named prompt templates through an owned cache.
type PromptService interface {
	Prompt(ctx context.Context, name string) (string, error)
	ReplaceTemplateVariables(template string, vars map[string]string) string
	ClearCache()
}

// ChatMigrationService moves plaintext chat history kept on the device
// into the encrypted remote store.
type ChatMigrationService interface {
	MigrateLegacyChat(ctx context.Context, userID string) (models.ChatMigrationResult, error)
}
