// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/MKhiriev/go-psyche-vault/internal/store"

// NewPostgRESTStorages wires every remote repository to c.
func NewPostgRESTStorages(c *Client) *store.Storages {
	return &store.Storages{
		Profiles:     NewProfileRepository(c),
		Journal:      NewJournalRepository(c),
		ChatMessages: NewChatMessageRepository(c),
		ChatSessions: NewChatSessionRepository(c),
		Prompts:      NewPromptRepository(c),
	}
}
