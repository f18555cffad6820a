// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const (
	MsgImportKey       = "Import your recovery key to access encrypted data."
	MsgCreateKey       = "Create a new recovery key to access encrypted data."
	MsgBackupKey       = "Back up your recovery key to continue."
	MsgWrongKey        = "The recovery key on this device does not match your account."
	MsgUndecryptable   = "Some of your data could not be decrypted with the key on this device."
	MsgCorruptedData   = "Encrypted data is corrupted or was truncated by storage."
	MsgIncompleteEntry = "Incomplete session data"
	MsgInvalidMessage  = "Invalid chat message"
	MsgUnexpected      = "An unexpected error occurred"
)

// CodedError is a failure the caller is expected to handle by its Code.
// Message is safe to show to the user.
type CodedError struct {
	Code    models.ErrorCode
	Message string
	Err     error
}

func (e *CodedError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// CodeOf returns the code carried by err, or [models.ErrorCodeUnknown] for
// any other non-nil error. It returns "" for nil.
func CodeOf(err error) models.ErrorCode {
	if err == nil {
		return ""
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return models.ErrorCodeUnknown
}

// MessageOf returns the user-facing message for err.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Message
	}
	if errors.Is(err, crypto.ErrInvalidRecoveryKey) {
		return err.Error()
	}
	return MsgUnexpected
}

// ToResult builds the uniform result shape from a service call.
func ToResult[T any](data T, err error) models.Result[T] {
	if err != nil {
		return models.Result[T]{
			Success: false,
			Error:   MessageOf(err),
			Code:    CodeOf(err),
		}
	}
	return models.Result[T]{Success: true, Data: &data}
}

// statusError maps a non-ready status to the error returned by the
// encrypting services. It returns nil for [models.StatusReady].
func statusError(status models.EncryptionStatus) error {
	switch status {
	case models.StatusReady:
		return nil
	case models.StatusNeedsBackup:
		return &CodedError{Code: models.ErrorCodeBackupRequired, Message: MsgBackupKey}
	case models.StatusNeedsImport:
		return &CodedError{Code: models.ErrorCodeKeyRequired, Message: MsgImportKey}
	case models.StatusNeedsNewKey:
		return &CodedError{Code: models.ErrorCodeKeyRequired, Message: MsgCreateKey}
	default:
		return &CodedError{Code: models.ErrorCodeWrongKey, Message: MsgWrongKey}
	}
}

func missingKeyError() error {
	return &CodedError{Code: models.ErrorCodeKeyRequired, Message: MsgImportKey, Err: ErrMissingEncryptionKey}
}

// decryptError classifies a failure to open a stored field. An
// authentication failure fails closed as a wrong key; anything else is a
// data-integrity problem.
func decryptError(err error) error {
	if errors.Is(err, crypto.ErrDecryptionFailed) {
		return &CodedError{Code: models.ErrorCodeWrongKey, Message: MsgUndecryptable, Err: err}
	}
	return &CodedError{Code: models.ErrorCodeUnknown, Message: MsgCorruptedData, Err: err}
}
