// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import "errors"

var (
	// ErrItemNotFound is returned by a [SecureStorage] when the requested
	// key does not exist.
	ErrItemNotFound = errors.New("secure storage item not found")

	// ErrInvalidKeyLength is returned when a caller tries to store key
	// material that is not exactly 32 bytes long.
	ErrInvalidKeyLength = errors.New("key must be 32 bytes")
)
