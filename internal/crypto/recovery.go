// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RecoveryPrefix marks a version 1 recovery token.
const RecoveryPrefix = "psyche_recovery_v1"

// RecoveryKey is a parsed recovery token.
type RecoveryKey struct {
	// UserID is the id of the user the key was exported for.
	UserID string
	// Key is the raw 32-byte key.
	Key []byte
}

// ExportRecoveryKey encodes key and its owner into a shareable token. The
// token is not protected beyond its transport; users move it through a
// channel they trust.
func ExportRecoveryKey(userID string, key []byte) string {
	return strings.Join([]string{RecoveryPrefix, userID, hex.EncodeToString(key)}, envelopeSeparator)
}

// ParseRecoveryKey decodes a token produced by [ExportRecoveryKey].
// Surrounding whitespace is ignored. Every violation is reported as
// [ErrInvalidRecoveryKey] with a reason suitable for the user.
func ParseRecoveryKey(token string) (RecoveryKey, error) {
	parts := strings.Split(strings.TrimSpace(token), envelopeSeparator)
	if len(parts) != 3 {
		return RecoveryKey{}, fmt.Errorf("%w: recovery key has wrong format", ErrInvalidRecoveryKey)
	}

	prefix, userID, keyHex := parts[0], parts[1], parts[2]
	if prefix != RecoveryPrefix {
		return RecoveryKey{}, fmt.Errorf("%w: recovery key prefix is invalid", ErrInvalidRecoveryKey)
	}
	if userID == "" {
		return RecoveryKey{}, fmt.Errorf("%w: recovery key user id is missing", ErrInvalidRecoveryKey)
	}
	if !IsValidHex(keyHex, KeySize) {
		return RecoveryKey{}, fmt.Errorf("%w: recovery key is not valid hex", ErrInvalidRecoveryKey)
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return RecoveryKey{}, fmt.Errorf("%w: %v", ErrInvalidRecoveryKey, err)
	}

	return RecoveryKey{UserID: userID, Key: key}, nil
}
