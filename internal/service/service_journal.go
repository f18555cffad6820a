// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/internal/validators"
	"github.com/MKhiriev/go-psyche-vault/models"
)

// DefaultListLimit is used when a list call is given a non-positive limit.
const DefaultListLimit = 50

type journalService struct {
	repo       store.JournalRepository
	encryption EncryptionService
	cipher     crypto.EnvelopeCipher
	validator  validators.Validator
}

func NewJournalService(repo store.JournalRepository, encryption EncryptionService, cipher crypto.EnvelopeCipher, validator validators.Validator) JournalService {
	return &journalService{
		repo:       repo,
		encryption: encryption,
		cipher:     cipher,
		validator:  validator,
	}
}

func (j *journalService) Create(ctx context.Context, userID string, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if err := j.validator.Validate(ctx, entry); err != nil {
		return models.JournalEntry{}, incompleteEntryError(err)
	}

	key, err := j.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.ID = uuid.NewString()
	entry.UserID = userID
	row, err := j.encrypt(key, entry)
	if err != nil {
		log.Err(err).Str("func", "journalService.Create").Str("user_id", userID).Msg("failed to encrypt journal entry")
		return models.JournalEntry{}, err
	}

	created, err := j.repo.CreateEntry(ctx, row)
	if err != nil {
		log.Err(err).Str("func", "journalService.Create").Str("user_id", userID).Msg("failed to save journal entry")
		return models.JournalEntry{}, fmt.Errorf("save journal entry: %w", err)
	}

	return j.decrypt(key, created)
}

func (j *journalService) List(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	key, err := j.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := j.repo.ListEntries(ctx, userID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "journalService.List").Str("user_id", userID).Msg("failed to list journal entries")
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	entries := make([]models.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := j.decrypt(key, row)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "journalService.List").Str("user_id", userID).Str("entry_id", row.ID).Msg("failed to decrypt journal entry")
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (j *journalService) Get(ctx context.Context, userID, id string) (models.JournalEntry, error) {
	key, err := j.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	row, err := j.repo.GetEntry(ctx, userID, id)
	if err != nil {
		if !errors.Is(err, store.ErrEntryNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "journalService.Get").Str("user_id", userID).Msg("failed to load journal entry")
		}
		return models.JournalEntry{}, fmt.Errorf("get journal entry: %w", err)
	}

	return j.decrypt(key, row)
}

func (j *journalService) Update(ctx context.Context, userID string, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	fields := []string{validators.FieldID, validators.FieldCriedAt, validators.FieldEmotion, validators.FieldFeelingIntensity, validators.FieldRecentSmileThing}
	if err := j.validator.Validate(ctx, entry, fields...); err != nil {
		return models.JournalEntry{}, incompleteEntryError(err)
	}

	key, err := j.encryption.ReadyKey(ctx, userID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.UserID = userID
	row, err := j.encrypt(key, entry)
	if err != nil {
		log.Err(err).Str("func", "journalService.Update").Str("user_id", userID).Msg("failed to encrypt journal entry")
		return models.JournalEntry{}, err
	}

	updated, err := j.repo.UpdateEntry(ctx, row)
	if err != nil {
		log.Err(err).Str("func", "journalService.Update").Str("user_id", userID).Msg("failed to update journal entry")
		return models.JournalEntry{}, fmt.Errorf("update journal entry: %w", err)
	}

	return j.decrypt(key, updated)
}

func (j *journalService) Delete(ctx context.Context, userID, id string) error {
	if _, err := j.encryption.ReadyKey(ctx, userID); err != nil {
		return err
	}

	if err := j.repo.DeleteEntry(ctx, userID, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "journalService.Delete").Str("user_id", userID).Msg("failed to delete journal entry")
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}

// encrypt seals every sensitive field into its own envelope. Text fields
// are trimmed first.
func (j *journalService) encrypt(key []byte, entry models.JournalEntry) (models.JournalEntryRow, error) {
	row := models.JournalEntryRow{
		ID:      entry.ID,
		UserID:  entry.UserID,
		CriedAt: entry.CriedAt.UTC(),
	}

	fields := []struct {
		dst   *string
		value string
	}{
		{&row.EmotionsEnc, string(entry.Emotion)},
		{&row.FeelingIntensityEnc, strconv.Itoa(entry.FeelingIntensity)},
		{&row.ThoughtsEnc, strings.TrimSpace(entry.Thoughts)},
		{&row.RecentSmileThingEnc, strings.TrimSpace(entry.RecentSmileThing)},
	}
	for _, f := range fields {
		enc, err := j.cipher.Encrypt(key, f.value)
		if err != nil {
			return models.JournalEntryRow{}, fmt.Errorf("encrypt journal entry: %w", err)
		}
		*f.dst = enc
	}

	return row, nil
}

// decrypt opens every sensitive field. Any failing field fails the row.
func (j *journalService) decrypt(key []byte, row models.JournalEntryRow) (models.JournalEntry, error) {
	entry := models.JournalEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		CriedAt:   row.CriedAt,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	var intensity, emotion string
	fields := []struct {
		dst   *string
		value string
	}{
		{&emotion, row.EmotionsEnc},
		{&intensity, row.FeelingIntensityEnc},
		{&entry.Thoughts, row.ThoughtsEnc},
		{&entry.RecentSmileThing, row.RecentSmileThingEnc},
	}
	for _, f := range fields {
		plain, err := j.cipher.Decrypt(key, f.value)
		if err != nil {
			return models.JournalEntry{}, decryptError(err)
		}
		*f.dst = plain
	}

	entry.Emotion = models.Emotion(emotion)
	n, err := strconv.Atoi(strings.TrimSpace(intensity))
	if err != nil {
		return models.JournalEntry{}, decryptError(fmt.Errorf("%w: feeling intensity", ErrCorruptedField))
	}
	entry.FeelingIntensity = n

	return entry, nil
}

func incompleteEntryError(err error) error {
	return &CodedError{
		Code:    models.ErrorCodeUnknown,
		Message: MsgIncompleteEntry,
		Err:     fmt.Errorf("%w: %w", ErrIncompleteSession, err),
	}
}
