// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-psyche-vault/internal/logger"

// Storages groups the remote repositories. Both the PostgreSQL backend and
// the PostgREST adapter produce one.
type Storages struct {
	Profiles     ProfileRepository
	Journal      JournalRepository
	ChatMessages ChatMessageRepository
	ChatSessions ChatSessionRepository
	Prompts      PromptRepository
}

// NewPostgresStorages wires every remote repository to db.
func NewPostgresStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Profiles:     NewProfileRepository(db, log),
		Journal:      NewJournalRepository(db, log),
		ChatMessages: NewChatMessageRepository(db, log),
		ChatSessions: NewChatSessionRepository(db, log),
		Prompts:      NewPromptRepository(db, log),
	}
}

// LocalStorages groups the device-local key/value tables.
type LocalStorages struct {
	// SecureItems backs the key slots when KEYSTORE_BACKEND=sqlite.
	SecureItems LocalItemRepository
	// Items holds device flags and the legacy chat cache.
	Items LocalItemRepository
}

// NewLocalStorages wires the device-local tables of db.
func NewLocalStorages(db *DB) *LocalStorages {
	return &LocalStorages{
		SecureItems: NewLocalItemRepository(db, TableSecureItems),
		Items:       NewLocalItemRepository(db, TableLocalItems),
	}
}
