// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the psyche command line. Every command resolves
// the configuration, opens a [Session] and calls exactly one service
// operation. Results are printed as colored text or, with --json, in the
// uniform {success, data, error, code} shape.
package cli
