// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the encryption key lifecycle and the
// encrypting services built on it.
//
// [EncryptionService] derives the per-user encryption status from the
// server-side key check and the local key slots, and drives backup,
// import and reset. [JournalService] and [ChatService] refuse to touch
// remote rows unless that status is ready; every sensitive field is sealed
// into its own envelope before it leaves the device and opened again
// before it is returned.
//
// Failures that the caller must react to carry a [models.ErrorCode]
// through [*CodedError]; use [CodeOf] to branch on them and [ToResult] to
// build the uniform result shape.
package service
