// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/internal/keystore"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const setupCompletePrefix = "encryption_setup_complete_v1_"

// SetupCompleteKey returns the device-local key of the setup flag.
func SetupCompleteKey(userID string) string {
	return setupCompletePrefix + userID
}

type encryptionService struct {
	profiles store.ProfileRepository
	journal  store.JournalRepository
	messages store.ChatMessageRepository
	sessions store.ChatSessionRepository
	keys     keystore.KeyStore
	device   store.LocalItemRepository
	cipher   crypto.EnvelopeCipher
}

func NewEncryptionService(storages *store.Storages, keys keystore.KeyStore, device store.LocalItemRepository, cipher crypto.EnvelopeCipher) EncryptionService {
	return &encryptionService{
		profiles: storages.Profiles,
		journal:  storages.Journal,
		messages: storages.ChatMessages,
		sessions: storages.ChatSessions,
		keys:     keys,
		device:   device,
		cipher:   cipher,
	}
}

func (s *encryptionService) Status(ctx context.Context, userID string) (models.EncryptionStatus, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.derive(ctx, userID, profile)
}

func (s *encryptionService) ReadyKey(ctx context.Context, userID string) ([]byte, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err = statusError(status); err != nil {
		return nil, err
	}

	key := s.keys.ActiveKey(ctx, userID)
	if key == nil {
		// cleared between derivation and use
		return nil, missingKeyError()
	}
	return key, nil
}

// derive computes the status from an already loaded profile.
func (s *encryptionService) derive(ctx context.Context, userID string, profile models.UserProfile) (models.EncryptionStatus, error) {
	log := logger.FromContext(ctx)

	if !profile.HasKeyCheck() {
		if !s.keys.HasActiveKey(ctx, userID) {
			if _, err := s.keys.CreateActiveKey(ctx, userID); err != nil {
				log.Err(err).Str("func", "encryptionService.derive").Str("user_id", userID).Msg("failed to create active key")
				return "", fmt.Errorf("create active key: %w", err)
			}
			log.Info().Str("func", "encryptionService.derive").Str("user_id", userID).Msg("created new active key")
		}
		return models.StatusNeedsBackup, nil
	}
	keyCheck := *profile.EncryptionKeyCheck

	if active := s.keys.ActiveKey(ctx, userID); active != nil {
		if err := crypto.VerifyKeyCheck(s.cipher, userID, active, keyCheck); err != nil {
			log.Warn().Err(err).Str("func", "encryptionService.derive").Str("user_id", userID).Msg("active key does not match key check")
			return models.StatusWrongKey, nil
		}
		return models.StatusReady, nil
	}

	if candidate := s.keys.CandidateKey(ctx, userID); candidate != nil {
		if err := crypto.VerifyKeyCheck(s.cipher, userID, candidate, keyCheck); err != nil {
			log.Warn().Err(err).Str("func", "encryptionService.derive").Str("user_id", userID).Msg("candidate key does not match key check")
			return models.StatusWrongKey, nil
		}
		if err := s.promote(ctx, userID, candidate); err != nil {
			return "", err
		}
		return models.StatusReady, nil
	}

	return models.StatusNeedsImport, nil
}

// promote stores candidate as the active key, then clears the candidate
// slot. A concurrent promotion writes the same key.
func (s *encryptionService) promote(ctx context.Context, userID string, candidate []byte) error {
	log := logger.FromContext(ctx)

	if err := s.keys.SetActiveKey(ctx, userID, candidate); err != nil {
		log.Err(err).Str("func", "encryptionService.promote").Str("user_id", userID).Msg("failed to promote candidate key")
		return fmt.Errorf("promote candidate key: %w", err)
	}
	if err := s.keys.ClearCandidateKey(ctx, userID); err != nil {
		log.Warn().Err(err).Str("func", "encryptionService.promote").Str("user_id", userID).Msg("failed to clear candidate key after promotion")
	}

	log.Info().Str("func", "encryptionService.promote").Str("user_id", userID).Msg("candidate key promoted to active")
	return nil
}

func (s *encryptionService) ConfirmBackup(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.HasKeyCheck() {
		log.Debug().Str("func", "encryptionService.ConfirmBackup").Str("user_id", userID).Msg("key check already present")
		return nil
	}

	active := s.keys.ActiveKey(ctx, userID)
	if active == nil {
		return missingKeyError()
	}

	keyCheck, err := crypto.NewKeyCheck(s.cipher, userID, active)
	if err != nil {
		log.Err(err).Str("func", "encryptionService.ConfirmBackup").Str("user_id", userID).Msg("failed to create key check")
		return err
	}

	stored, err := s.profiles.SetKeyCheckIfAbsent(ctx, userID, keyCheck)
	if err != nil {
		log.Err(err).Str("func", "encryptionService.ConfirmBackup").Str("user_id", userID).Msg("failed to store key check")
		return fmt.Errorf("store key check: %w", err)
	}
	if !stored {
		log.Warn().Str("func", "encryptionService.ConfirmBackup").Str("user_id", userID).Msg("key check was written concurrently, keeping existing record")
		return nil
	}

	log.Info().Str("func", "encryptionService.ConfirmBackup").Str("user_id", userID).Msg("backup confirmed")
	s.setSetupComplete(ctx, userID, true)
	return nil
}

func (s *encryptionService) RecoveryKey(ctx context.Context, userID string) (string, error) {
	active := s.keys.ActiveKey(ctx, userID)
	if active == nil {
		return "", missingKeyError()
	}
	return crypto.ExportRecoveryKey(userID, active), nil
}

func (s *encryptionService) ImportRecoveryKey(ctx context.Context, userID, token string) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	recovery, err := crypto.ParseRecoveryKey(token)
	if err != nil {
		log.Debug().Err(err).Str("func", "encryptionService.ImportRecoveryKey").Str("user_id", userID).Msg("rejected recovery key")
		return models.ImportResult{}, err
	}

	result := models.ImportResult{UserMismatch: recovery.UserID != userID}
	if result.UserMismatch {
		log.Warn().Str("func", "encryptionService.ImportRecoveryKey").Str("user_id", userID).Msg("recovery key was exported for a different user")
	}

	if err = s.keys.SetCandidateKey(ctx, userID, recovery.Key); err != nil {
		log.Err(err).Str("func", "encryptionService.ImportRecoveryKey").Str("user_id", userID).Msg("failed to store candidate key")
		return models.ImportResult{}, fmt.Errorf("store candidate key: %w", err)
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return models.ImportResult{}, err
	}
	if err = s.settleActiveKey(ctx, userID, profile, recovery.Key); err != nil {
		return models.ImportResult{}, err
	}

	result.Status, err = s.derive(ctx, userID, profile)
	if err != nil {
		return models.ImportResult{}, err
	}

	if result.Status.IsReady() && !result.UserMismatch {
		s.setSetupComplete(ctx, userID, true)
	}
	return result, nil
}

// settleActiveKey makes an imported candidate reachable by derivation. An
// active key that fails the key check is dropped when the candidate passes
// it; an active key that passes makes the candidate redundant.
func (s *encryptionService) settleActiveKey(ctx context.Context, userID string, profile models.UserProfile, candidate []byte) error {
	log := logger.FromContext(ctx)

	active := s.keys.ActiveKey(ctx, userID)
	if active == nil || !profile.HasKeyCheck() {
		return nil
	}
	keyCheck := *profile.EncryptionKeyCheck

	if crypto.VerifyKeyCheck(s.cipher, userID, active, keyCheck) == nil {
		if bytes.Equal(active, candidate) {
			if err := s.keys.ClearCandidateKey(ctx, userID); err != nil {
				log.Warn().Err(err).Str("func", "encryptionService.settleActiveKey").Str("user_id", userID).Msg("failed to clear redundant candidate key")
			}
		}
		return nil
	}

	if crypto.VerifyKeyCheck(s.cipher, userID, candidate, keyCheck) != nil {
		return nil
	}

	if err := s.keys.ClearActiveKey(ctx, userID); err != nil {
		log.Err(err).Str("func", "encryptionService.settleActiveKey").Str("user_id", userID).Msg("failed to clear stale active key")
		return fmt.Errorf("clear stale active key: %w", err)
	}
	log.Info().Str("func", "encryptionService.settleActiveKey").Str("user_id", userID).Msg("replaced active key that did not match key check")
	return nil
}

func (s *encryptionService) Reset(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx).Component("encryption_reset")

	if err := s.journal.DeleteAllEntries(ctx, userID); err != nil {
		log.Err(err).Str("func", "encryptionService.Reset").Str("user_id", userID).Msg("failed to delete journal entries")
		return fmt.Errorf("delete journal entries: %w", err)
	}
	if err := s.messages.DeleteAllMessages(ctx, userID); err != nil {
		log.Err(err).Str("func", "encryptionService.Reset").Str("user_id", userID).Msg("failed to delete chat messages")
		return fmt.Errorf("delete chat messages: %w", err)
	}
	if err := s.sessions.DeleteAllSessions(ctx, userID); err != nil {
		log.Err(err).Str("func", "encryptionService.Reset").Str("user_id", userID).Msg("failed to delete chat sessions")
		return fmt.Errorf("delete chat sessions: %w", err)
	}

	if err := s.keys.ClearActiveKey(ctx, userID); err != nil {
		return fmt.Errorf("clear active key: %w", err)
	}
	if err := s.keys.ClearCandidateKey(ctx, userID); err != nil {
		return fmt.Errorf("clear candidate key: %w", err)
	}
	if _, err := s.keys.CreateActiveKey(ctx, userID); err != nil {
		log.Err(err).Str("func", "encryptionService.Reset").Str("user_id", userID).Msg("failed to create active key")
		return fmt.Errorf("create active key: %w", err)
	}

	if err := s.profiles.ClearKeyCheck(ctx, userID); err != nil {
		log.Err(err).Str("func", "encryptionService.Reset").Str("user_id", userID).Msg("failed to clear key check")
		return fmt.Errorf("clear key check: %w", err)
	}

	s.setSetupComplete(ctx, userID, false)
	log.Info().Str("func", "encryptionService.Reset").Str("user_id", userID).Msg("encrypted data reset")
	return nil
}

func (s *encryptionService) Gate(ctx context.Context, userID string) (models.Destination, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return "", err
	}

	if status.IsReady() && s.setupComplete(ctx, userID) {
		return models.DestinationHome, nil
	}

	s.setSetupComplete(ctx, userID, false)
	if status == models.StatusNeedsBackup {
		return models.DestinationSaveKey, nil
	}
	return models.DestinationImportKey, nil
}

func (s *encryptionService) MarkSetupComplete(ctx context.Context, userID string) error {
	if err := s.device.SetItem(ctx, SetupCompleteKey(userID), "true"); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptionService.MarkSetupComplete").Str("user_id", userID).Msg("failed to store setup flag")
		return fmt.Errorf("store setup flag: %w", err)
	}
	return nil
}

// setupComplete reads the device flag; read errors count as not complete.
func (s *encryptionService) setupComplete(ctx context.Context, userID string) bool {
	value, err := s.device.GetItem(ctx, SetupCompleteKey(userID))
	if err != nil {
		return false
	}
	return value == "true"
}

// setSetupComplete writes the device flag and ignores storage errors.
func (s *encryptionService) setSetupComplete(ctx context.Context, userID string, complete bool) {
	value := "false"
	if complete {
		value = "true"
	}
	if err := s.device.SetItem(ctx, SetupCompleteKey(userID), value); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "encryptionService.setSetupComplete").Str("user_id", userID).Msg("failed to store setup flag")
	}
}

func (s *encryptionService) loadProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptionService.loadProfile").Str("user_id", userID).Msg("failed to load key check")
		return models.UserProfile{}, fmt.Errorf("load key check: %w", err)
	}
	return profile, nil
}
