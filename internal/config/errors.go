// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates that neither a user id nor an access
	// token was provided.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown remote backend, a
	// missing DSN for postgres or an empty local database path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates missing PostgREST settings
	// (URL, API key or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidKeystoreConfigs indicates an unknown key slot backend or an
	// empty keychain service name.
	ErrInvalidKeystoreConfigs = errors.New("invalid keystore configuration")
)
