// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-psyche-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository reads the user profile and maintains its key-check record.
type ProfileRepository interface {
	// GetProfile returns [ErrProfileNotFound] when the user has no profile row.
	GetProfile(ctx context.Context, userID string) (models.UserProfile, error)

	// SetKeyCheckIfAbsent stores keyCheck only when the profile has none
	// yet. It reports whether the value was written.
	SetKeyCheckIfAbsent(ctx context.Context, userID, keyCheck string) (bool, error)

	// ClearKeyCheck sets the key-check record back to null.
	ClearKeyCheck(ctx context.Context, userID string) error
}

// JournalRepository stores encrypted journal entries (table "cries").
type JournalRepository interface {
	CreateEntry(ctx context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error)
	// GetEntry returns [ErrEntryNotFound] when no entry matches.
	GetEntry(ctx context.Context, userID, id string) (models.JournalEntryRow, error)
	// ListEntries returns up to limit entries, most recent cried_at first.
	ListEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntryRow, error)
	// UpdateEntry returns [ErrEntryNotFound] when no entry matches.
	UpdateEntry(ctx context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error)
	// DeleteEntry returns [ErrEntryNotFound] when no entry matches.
	DeleteEntry(ctx context.Context, userID, id string) error
	DeleteAllEntries(ctx context.Context, userID string) error
}

// ChatMessageRepository stores encrypted chat messages.
type ChatMessageRepository interface {
	CreateMessage(ctx context.Context, row models.ChatMessageRow) (models.ChatMessageRow, error)
	// ListMessages returns up to limit messages ordered by created_at ascending.
	ListMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessageRow, error)
	CountMessages(ctx context.Context, userID string) (int, error)
	// DeleteOldestMessages removes the n messages with the smallest created_at.
	DeleteOldestMessages(ctx context.Context, userID string, n int) error
	DeleteAllMessages(ctx context.Context, userID string) error
}

// ChatSessionRepository stores chat sessions with their encrypted summaries.
type ChatSessionRepository interface {
	// GetLatestSession returns [ErrSessionNotFound] when the user has no session.
	GetLatestSession(ctx context.Context, userID string) (models.ChatSessionRow, error)
	UpsertSession(ctx context.Context, row models.ChatSessionRow) (models.ChatSessionRow, error)
	// ClearSummaries sets summary_enc to null on every session of the user.
	ClearSummaries(ctx context.Context, userID string) error
	DeleteAllSessions(ctx context.Context, userID string) error
}

// PromptRepository reads AI prompt templates.
type PromptRepository interface {
	// GetPrompt returns [ErrPromptNotFound] when no prompt has that name.
	GetPrompt(ctx context.Context, name string) (models.Prompt, error)
}

// LocalItemRepository is a device-local string key/value table.
// It satisfies keystore.SecureStorage.
type LocalItemRepository interface {
	// GetItem returns [ErrItemNotFound] when the key is absent.
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	DeleteItem(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
