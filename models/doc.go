// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain types shared by the store, adapter and
// service layers: plaintext journal and chat records, their encrypted row
// counterparts, the encryption status enum and the caller-facing error codes.
package models
