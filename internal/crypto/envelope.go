// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the length of a raw symmetric key in bytes.
	KeySize = chacha20poly1305.KeySize

	// NonceSize is the length of the per-envelope random nonce in bytes.
	NonceSize = chacha20poly1305.NonceSizeX

	// TagSize is the length of the Poly1305 authentication tag in bytes.
	TagSize = chacha20poly1305.Overhead

	// EnvelopePrefix marks a value as a version 1 envelope.
	EnvelopePrefix = "enc_v1"

	envelopeSeparator = ":"
	envelopeSegments  = 3
)

// Hex lengths of the ciphertext segment that match common fixed-size column
// limits. Seeing one of them on an authentication failure hints at
// truncation by the store; it is a diagnostic only.
var columnLimitHexLengths = map[int]struct{}{
	255:  {},
	512:  {},
	1024: {},
}

// xChaChaCipher is the XChaCha20-Poly1305 implementation of [EnvelopeCipher].
type xChaChaCipher struct {
	// random is the nonce source. Always crypto/rand outside of tests.
	random io.Reader
}

// NewEnvelopeCipher constructs an [EnvelopeCipher] that draws nonces from
// the operating system CSPRNG.
func NewEnvelopeCipher() EnvelopeCipher {
	return &xChaChaCipher{random: rand.Reader}
}

// IsEnvelope reports whether value carries the envelope prefix. Values
// without it are legacy plaintext.
func IsEnvelope(value string) bool {
	return strings.HasPrefix(value, EnvelopePrefix+envelopeSeparator)
}

// Encrypt implements [EnvelopeCipher].
func (c *xChaChaCipher) Encrypt(key []byte, plaintext string) (string, error) {
	if plaintext == "" {
		return plaintext, nil
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, []byte(plaintext), nil)

	var b strings.Builder
	b.Grow(envelopeSize(plaintext))
	b.WriteString(EnvelopePrefix)
	b.WriteString(envelopeSeparator)
	b.WriteString(hex.EncodeToString(nonce))
	b.WriteString(envelopeSeparator)
	b.WriteString(hex.EncodeToString(ciphertext))

	return b.String(), nil
}

// Decrypt implements [EnvelopeCipher].
func (c *xChaChaCipher) Decrypt(key []byte, value string) (string, error) {
	if !IsEnvelope(value) {
		return value, nil
	}

	parts := strings.Split(value, envelopeSeparator)
	if len(parts) != envelopeSegments {
		return "", fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedEnvelope, envelopeSegments, len(parts))
	}
	nonceHex, ciphertextHex := parts[1], parts[2]

	if !IsValidHex(nonceHex, NonceSize) {
		return "", fmt.Errorf("%w: invalid nonce encoding (length %d)", ErrMalformedEnvelope, len(nonceHex))
	}
	if len(ciphertextHex)%2 != 0 {
		return "", fmt.Errorf("%w: odd ciphertext length %d", ErrTruncatedEnvelope, len(ciphertextHex))
	}
	if !IsValidHex(ciphertextHex, 0) {
		return "", fmt.Errorf("%w: invalid ciphertext encoding", ErrMalformedEnvelope)
	}
	if len(ciphertextHex) < TagSize*2 {
		return "", fmt.Errorf("%w: ciphertext length %d is below the tag size", ErrTruncatedEnvelope, len(ciphertextHex))
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	// both segments were validated above
	nonce, _ := hex.DecodeString(nonceHex)
	ciphertext, _ := hex.DecodeString(ciphertextHex)

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		if _, ok := columnLimitHexLengths[len(ciphertextHex)]; ok {
			return "", fmt.Errorf("%w: ciphertext length %d matches a common column limit, the value may be truncated", ErrDecryptionFailed, len(ciphertextHex))
		}
		return "", fmt.Errorf("%w: wrong key, corrupted data or tampered ciphertext", ErrDecryptionFailed)
	}

	return string(plaintext), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKey, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return aead, nil
}

// GenerateKey reads [KeySize] random bytes from the OS CSPRNG.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// envelopeSize is the exact length of the envelope Encrypt produces for
// plaintext.
func envelopeSize(plaintext string) int {
	if plaintext == "" {
		return 0
	}
	return len(EnvelopePrefix) + len(envelopeSeparator) +
		NonceSize*2 + len(envelopeSeparator) +
		(len(plaintext)+TagSize)*2
}
