// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keystore manages the two per-user key slots kept in device secure
// storage: the active key, trusted to decrypt the user's data, and the
// candidate key, imported from a recovery token and not yet verified.
//
// Slots are addressed by deterministic names:
//
//	enc_key_v1_<userID>            active
//	enc_key_candidate_v1_<userID>  candidate
//
// Values are stored as 64 lowercase hex characters. Reads never fail: a
// missing entry, a backend error or a value that is not a valid 32-byte hex
// key all read as "absent".
//
// The secure storage itself is pluggable through [SecureStorage]. This
// package ships an in-memory backend and an OS keychain backend built on
// github.com/99designs/keyring; the device SQLite store in internal/store
// satisfies the same interface.
package keystore
