// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side primitives of the end-to-end
// encryption subsystem. It knows nothing about users' storage, the network
// or the database; it only seals and opens strings and encodes keys.
//
// Wire formats:
//
//	envelope:        enc_v1:<48-hex nonce>:<hex ciphertext||tag>
//	recovery token:  psyche_recovery_v1:<userId>:<64-hex key>
//	key-check tag:   psyche_key_check_v1:<userId>   (only ever stored sealed)
//
// Envelopes use XChaCha20-Poly1305 (256-bit key, 192-bit random nonce,
// 128-bit tag). A value without the envelope prefix is legacy plaintext and
// is returned unchanged by Decrypt; that passthrough is a compatibility shim
// and gives no authenticity guarantee for such values.
package crypto
