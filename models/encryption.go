// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptionStatus is the state of a user's encryption setup on this device.
// It is derived fresh on every query and never cached across calls.
type EncryptionStatus string

const (
	// StatusReady means the local active key verifies against the
	// server-side key-check record.
	StatusReady EncryptionStatus = "ready"

	// StatusNeedsBackup means the user has never confirmed a backup of the
	// recovery key; no key-check record exists on the server yet.
	StatusNeedsBackup EncryptionStatus = "needs_backup"

	// StatusNeedsImport means a key-check record exists but this device has
	// no key material at all.
	StatusNeedsImport EncryptionStatus = "needs_import"

	// StatusNeedsNewKey is reserved for flows that require generating a new
	// key. Status derivation never produces it.
	StatusNeedsNewKey EncryptionStatus = "needs_new_key"

	// StatusWrongKey means the local key does not decrypt the key-check
	// record (or the record is malformed).
	StatusWrongKey EncryptionStatus = "wrong_key"
)

// IsReady reports whether encrypted data may be read or written.
func (s EncryptionStatus) IsReady() bool {
	return s == StatusReady
}

// ErrorCode is the closed set of machine-readable failure codes surfaced to
// callers of the domain encryptors. Callers branch on the code and never
// parse the message.
type ErrorCode string

const (
	// ErrorCodeKeyRequired: no usable key on this device (import or create one).
	ErrorCodeKeyRequired ErrorCode = "ENCRYPTION_KEY_REQUIRED"
	// ErrorCodeBackupRequired: the recovery key has not been backed up yet.
	ErrorCodeBackupRequired ErrorCode = "ENCRYPTION_KEY_BACKUP_REQUIRED"
	// ErrorCodeWrongKey: the local key does not match the account.
	ErrorCodeWrongKey ErrorCode = "ENCRYPTION_WRONG_KEY"
	// ErrorCodeUnknown covers storage, network and data-integrity failures.
	ErrorCodeUnknown ErrorCode = "UNKNOWN"
)

// Destination is where the UI should send the user after the encryption gate
// has evaluated the device state.
type Destination string

const (
	DestinationHome      Destination = "home"
	DestinationSaveKey   Destination = "save_key"
	DestinationImportKey Destination = "import_key"
)

// ImportResult describes the outcome of importing a recovery token.
type ImportResult struct {
	// Status is the encryption status derived right after the import.
	Status EncryptionStatus `json:"status"`

	// UserMismatch is set when the token was exported for a different user.
	// The key is still kept as the candidate so the user may retry.
	UserMismatch bool `json:"user_mismatch"`
}
