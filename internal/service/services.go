// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/internal/keystore"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/internal/validators"
)

type Services struct {
	Encryption    EncryptionService
	Journal       JournalService
	Chat          ChatService
	Prompts       PromptService
	ChatMigration ChatMigrationService
}

// NewServices wires every service to the remote storages, the key slots
// and the device-local key/value store.
func NewServices(remote *store.Storages, keys keystore.KeyStore, device store.LocalItemRepository) *Services {
	cipher := crypto.NewEnvelopeCipher()
	validator := validators.NewDomainValidator()

	encryptionSvc := NewEncryptionService(remote, keys, device, cipher)
	chatSvc := NewChatService(remote.ChatMessages, remote.ChatSessions, encryptionSvc, cipher, validator)

	return &Services{
		Encryption:    encryptionSvc,
		Journal:       NewJournalService(remote.Journal, encryptionSvc, cipher, validator),
		Chat:          chatSvc,
		Prompts:       NewPromptService(remote.Prompts),
		ChatMigration: NewChatMigrationService(chatSvc, device, validator),
	}
}
