// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when a key is not exactly [KeySize] bytes.
	ErrInvalidKey = errors.New("encryption key must be 32 bytes")

	// ErrMalformedEnvelope is returned when a prefixed value does not have
	// the envelope structure (segment count, hex encoding, nonce size).
	// It signals a data-integrity problem, not a wrong key.
	ErrMalformedEnvelope = errors.New("invalid ciphertext format")

	// ErrTruncatedEnvelope is returned when the ciphertext segment is too
	// short or has an odd length. This usually means the storage column
	// holding the envelope is too narrow. It wraps [ErrMalformedEnvelope].
	ErrTruncatedEnvelope = fmt.Errorf("%w: ciphertext appears truncated, the storage column may be too small", ErrMalformedEnvelope)

	// ErrDecryptionFailed is returned when authentication of a well-formed
	// envelope fails: wrong key, corrupted data or tampered ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed: invalid tag")

	// ErrKeyCheckMismatch is returned when a key-check record decrypts but
	// does not contain the tag expected for the user.
	ErrKeyCheckMismatch = errors.New("key check does not match user")

	// ErrInvalidRecoveryKey is returned for any malformed recovery token.
	// The wrapped message says which part is wrong and is safe to show.
	ErrInvalidRecoveryKey = errors.New("invalid recovery key")
)
