// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the server-side profile row (table users_data) holding the
// key-check record. The record is the only server-side anchor for deciding
// whether a local key belongs to the user.
type UserProfile struct {
	// ID is the user id (primary key).
	ID string `json:"id" db:"id"`

	// EncryptionKeyCheck is the envelope produced by encrypting the
	// user-bound key-check tag under the active key. Nil until the first
	// backup confirmation; immutable afterwards except through reset.
	EncryptionKeyCheck *string `json:"encryption_key_check" db:"encryption_key_check"`
}

// HasKeyCheck reports whether a non-empty key-check record is present.
func (p UserProfile) HasKeyCheck() bool {
	return p.EncryptionKeyCheck != nil && *p.EncryptionKeyCheck != ""
}

// TableName returns the name of the database table
// associated with the UserProfile model.
func (p UserProfile) TableName() string {
	return "users_data"
}
