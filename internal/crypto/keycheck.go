// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// KeyCheckPrefix starts the plaintext tag sealed into a key-check record.
const KeyCheckPrefix = "psyche_key_check_v1"

// KeyCheckPlaintext returns the user-bound tag that a key-check record
// must decrypt to.
func KeyCheckPlaintext(userID string) string {
	return KeyCheckPrefix + envelopeSeparator + userID
}

// NewKeyCheck seals the key-check tag for userID under key.
func NewKeyCheck(c EnvelopeCipher, userID string, key []byte) (string, error) {
	keyCheck, err := c.Encrypt(key, KeyCheckPlaintext(userID))
	if err != nil {
		return "", fmt.Errorf("create key check: %w", err)
	}
	return keyCheck, nil
}

// VerifyKeyCheck returns nil when keyCheck opens under key to the tag
// expected for userID.
//
// The record must be an envelope: the legacy plaintext passthrough of
// Decrypt does not apply here, otherwise a raw tag would verify any key.
func VerifyKeyCheck(c EnvelopeCipher, userID string, key []byte, keyCheck string) error {
	if !IsEnvelope(keyCheck) {
		return fmt.Errorf("%w: key check is not an envelope", ErrMalformedEnvelope)
	}

	decrypted, err := c.Decrypt(key, keyCheck)
	if err != nil {
		return err
	}
	if decrypted != KeyCheckPlaintext(userID) {
		return ErrKeyCheckMismatch
	}

	return nil
}
