// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
)

const (
	activeKeyPrefix    = "enc_key_v1_"
	candidateKeyPrefix = "enc_key_candidate_v1_"
)

// ActiveKeyName returns the secure storage key of the user's active slot.
func ActiveKeyName(userID string) string {
	return activeKeyPrefix + userID
}

// CandidateKeyName returns the secure storage key of the user's candidate slot.
func CandidateKeyName(userID string) string {
	return candidateKeyPrefix + userID
}

type keyStore struct {
	storage  SecureStorage
	generate func() ([]byte, error)
}

// NewKeyStore returns a [KeyStore] persisting key slots in storage.
func NewKeyStore(storage SecureStorage) KeyStore {
	return &keyStore{
		storage:  storage,
		generate: crypto.GenerateKey,
	}
}

func (k *keyStore) ActiveKey(ctx context.Context, userID string) []byte {
	return k.read(ctx, ActiveKeyName(userID))
}

func (k *keyStore) SetActiveKey(ctx context.Context, userID string, key []byte) error {
	return k.write(ctx, ActiveKeyName(userID), key)
}

func (k *keyStore) ClearActiveKey(ctx context.Context, userID string) error {
	return k.clear(ctx, ActiveKeyName(userID))
}

func (k *keyStore) HasActiveKey(ctx context.Context, userID string) bool {
	return k.ActiveKey(ctx, userID) != nil
}

func (k *keyStore) CandidateKey(ctx context.Context, userID string) []byte {
	return k.read(ctx, CandidateKeyName(userID))
}

func (k *keyStore) SetCandidateKey(ctx context.Context, userID string, key []byte) error {
	return k.write(ctx, CandidateKeyName(userID), key)
}

func (k *keyStore) ClearCandidateKey(ctx context.Context, userID string) error {
	return k.clear(ctx, CandidateKeyName(userID))
}

func (k *keyStore) HasCandidateKey(ctx context.Context, userID string) bool {
	return k.CandidateKey(ctx, userID) != nil
}

func (k *keyStore) CreateActiveKey(ctx context.Context, userID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	key, err := k.generate()
	if err != nil {
		log.Err(err).Str("func", "keyStore.CreateActiveKey").Str("user_id", userID).Msg("failed to generate key")
		return nil, fmt.Errorf("generate key: %w", err)
	}
	if err = k.SetActiveKey(ctx, userID, key); err != nil {
		return nil, err
	}

	log.Info().Str("func", "keyStore.CreateActiveKey").Str("user_id", userID).Msg("new active key created")
	return key, nil
}

// read never fails; absence, backend errors and corrupt values all yield nil.
func (k *keyStore) read(ctx context.Context, name string) []byte {
	log := logger.FromContext(ctx)

	value, err := k.storage.GetItem(ctx, name)
	if err != nil {
		log.Debug().Err(err).Str("func", "keyStore.read").Str("slot", name).Msg("key slot is empty or unreadable")
		return nil
	}

	value = strings.TrimSpace(value)
	if !crypto.IsValidHex(value, crypto.KeySize) {
		log.Warn().Str("func", "keyStore.read").Str("slot", name).Int("length", len(value)).Msg("stored key is not valid hex, treating as absent")
		return nil
	}

	key, err := hex.DecodeString(value)
	if err != nil {
		return nil
	}
	return key
}

func (k *keyStore) write(ctx context.Context, name string, key []byte) error {
	log := logger.FromContext(ctx)

	if len(key) != crypto.KeySize {
		return ErrInvalidKeyLength
	}

	if err := k.storage.SetItem(ctx, name, hex.EncodeToString(key)); err != nil {
		log.Err(err).Str("func", "keyStore.write").Str("slot", name).Msg("failed to store key")
		return fmt.Errorf("store key %s: %w", name, err)
	}
	return nil
}

func (k *keyStore) clear(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := k.storage.DeleteItem(ctx, name); err != nil {
		log.Err(err).Str("func", "keyStore.clear").Str("slot", name).Msg("failed to delete key")
		return fmt.Errorf("delete key %s: %w", name, err)
	}
	return nil
}
