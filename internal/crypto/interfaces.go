// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_cipher_mock.go -package=mock

// EnvelopeCipher seals and opens single strings into self-describing
// versioned envelopes.
type EnvelopeCipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce, so two
	// calls with the same input never produce the same envelope.
	// An empty plaintext is returned unchanged.
	Encrypt(key []byte, plaintext string) (string, error)

	// Decrypt opens an envelope produced by Encrypt.
	//
	// A value without the envelope prefix is returned unchanged (legacy
	// plaintext). Structural problems are reported as [ErrMalformedEnvelope]
	// (or [ErrTruncatedEnvelope], which wraps it); an authentication failure
	// caused by a wrong key or tampering is reported as [ErrDecryptionFailed].
	Decrypt(key []byte, envelope string) (string, error)
}
