// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrMissingEncryptionKey = errors.New("missing encryption key")
	ErrCorruptedField       = errors.New("decrypted field has an invalid value")

	ErrIncompleteSession = errors.New("incomplete session data")
	ErrInvalidMessage    = errors.New("invalid chat message")

	ErrInvalidPromptName = errors.New("invalid prompt name")
	ErrPromptNotFound    = errors.New("prompt not found")

	ErrLegacyChatCorrupted = errors.New("legacy chat history is not valid JSON")
)
