// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/99designs/keyring"
)

type keyringStorage struct {
	ring keyring.Keyring
}

// OpenKeyringStorage opens the OS keychain (macOS Keychain, Secret Service,
// KWallet, Windows Credential Manager, ...) under serviceName.
func OpenKeyringStorage(serviceName string) (SecureStorage, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              serviceName,
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return NewKeyringStorage(ring), nil
}

// NewKeyringStorage wraps an already opened keyring.
func NewKeyringStorage(ring keyring.Keyring) SecureStorage {
	return &keyringStorage{ring: ring}
}

func (k *keyringStorage) GetItem(_ context.Context, key string) (string, error) {
	item, err := k.ring.Get(key)
	if isAbsent(err) {
		return "", ErrItemNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return string(item.Data), nil
}

func (k *keyringStorage) SetItem(_ context.Context, key, value string) error {
	err := k.ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       key,
		Description: "psyche encryption key",
	})
	if err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

func (k *keyringStorage) DeleteItem(_ context.Context, key string) error {
	err := k.ring.Remove(key)
	if err != nil && !isAbsent(err) {
		return fmt.Errorf("keyring remove: %w", err)
	}
	return nil
}

// isAbsent reports a missing item. The file backend returns the raw
// os.Remove error instead of keyring.ErrKeyNotFound.
func isAbsent(err error) bool {
	return errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, os.ErrNotExist)
}
