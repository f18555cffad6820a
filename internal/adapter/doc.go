// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter reaches the remote store through a PostgREST API (the
// REST layer of Supabase-style backends).
//
// [NewPostgRESTStorages] returns the same repository set as the direct
// PostgreSQL backend in internal/store, so services do not know which one
// they talk to. Row-level security on the server scopes every table to the
// owner of the access token; the repositories still filter by user_id.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is].
package adapter
