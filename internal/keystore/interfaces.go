// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// SecureStorage is an opaque string-to-string store with OS-level
// protection. Get returns [ErrItemNotFound] when the key is absent.
// Deleting an absent key is not an error.
type SecureStorage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	DeleteItem(ctx context.Context, key string) error
}

// KeyStore manages the active and candidate key slots of a user.
//
// Getters return nil when the slot is empty or unreadable.
type KeyStore interface {
	ActiveKey(ctx context.Context, userID string) []byte
	SetActiveKey(ctx context.Context, userID string, key []byte) error
	ClearActiveKey(ctx context.Context, userID string) error
	HasActiveKey(ctx context.Context, userID string) bool

	CandidateKey(ctx context.Context, userID string) []byte
	SetCandidateKey(ctx context.Context, userID string, key []byte) error
	ClearCandidateKey(ctx context.Context, userID string) error
	HasCandidateKey(ctx context.Context, userID string) bool

	// CreateActiveKey generates a fresh random key, stores it in the active
	// slot and returns it.
	CreateActiveKey(ctx context.Context, userID string) ([]byte, error)
}
