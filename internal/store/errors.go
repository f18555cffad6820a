// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileNotFound is returned when the user has no profile row.
	ErrProfileNotFound = errors.New("user profile was not found")

	// ErrEntryNotFound is returned when a journal entry does not exist or
	// belongs to another user.
	ErrEntryNotFound = errors.New("journal entry was not found")

	// ErrSessionNotFound is returned when the user has no chat session.
	ErrSessionNotFound = errors.New("chat session was not found")

	// ErrPromptNotFound is returned when no prompt has the requested name.
	ErrPromptNotFound = errors.New("prompt was not found")

	// ErrItemNotFound is returned by local item repositories for absent keys.
	ErrItemNotFound = errors.New("local item was not found")

	// ErrTransient marks failures classified as retryable (connection loss,
	// serialization failure, deadlock). It is always joined with the cause.
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE without result rows fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
