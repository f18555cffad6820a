// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence boundary of the client.
//
// The remote side holds the user profile with its key-check record and the
// encrypted journal and chat rows. It is reached either directly through
// PostgreSQL (this package) or through PostgREST (internal/adapter); both
// implement the repository interfaces declared in interfaces.go.
//
// The device side is a SQLite file holding plain key/value items: device
// flags, the legacy chat cache and, optionally, the key slots.
//
// Repositories only move opaque strings. They never see plaintext of
// sensitive fields or key material.
package store
