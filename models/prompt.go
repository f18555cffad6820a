// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Prompt is a named text-generation prompt template (table prompts).
// Prompts are not user data and are stored in plaintext.
type Prompt struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}
