// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks plaintext domain records before they are
// encrypted and written.
//
// A record that fails validation is never encrypted or sent to the remote
// store. Validation runs on plaintext only; envelopes are never inspected
// here.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
