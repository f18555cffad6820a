// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-psyche-vault/internal/config"
	"github.com/MKhiriev/go-psyche-vault/internal/mock"
	"github.com/MKhiriev/go-psyche-vault/internal/service"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const testUserID = "u-1"

type harness struct {
	encryption *mock.MockEncryptionService
	journal    *mock.MockJournalService
	chat       *mock.MockChatService
	prompts    *mock.MockPromptService
	migration  *mock.MockChatMigrationService

	stdin     *strings.Reader
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	clipboard []string
	cfg       *config.StructuredConfig
	dir       string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	color.NoColor = true
	ctrl := gomock.NewController(t)

	return &harness{
		encryption: mock.NewMockEncryptionService(ctrl),
		journal:    mock.NewMockJournalService(ctrl),
		chat:       mock.NewMockChatService(ctrl),
		prompts:    mock.NewMockPromptService(ctrl),
		migration:  mock.NewMockChatMigrationService(ctrl),
		stdin:      strings.NewReader(""),
		dir:        t.TempDir(),
	}
}

func (h *harness) run(args ...string) error {
	base := []string{
		"--user-id", testUserID,
		"--remote", config.RemoteBackendPostgres,
		"--dsn", "postgres://localhost/psyche",
		"--keystore", config.KeystoreBackendMemory,
		"--local-db", filepath.Join(h.dir, "psyche.db"),
		"--log-file", filepath.Join(h.dir, "psyche.log"),
	}

	bootstrap := func(_ context.Context, cfg *config.StructuredConfig) (*Session, error) {
		h.cfg = cfg
		return NewSession(cfg.App.UserID, &service.Services{
			Encryption:    h.encryption,
			Journal:       h.journal,
			Chat:          h.chat,
			Prompts:       h.prompts,
			ChatMigration: h.migration,
		}), nil
	}

	return Execute(context.Background(), append(args, base...),
		WithBootstrap(bootstrap),
		WithIO(h.stdin, &h.stdout, &h.stderr),
		WithClipboard(func(s string) error {
			h.clipboard = append(h.clipboard, s)
			return nil
		}),
	)
}

func TestKeyStatus(t *testing.T) {
	h := newHarness(t)
	h.encryption.EXPECT().Status(gomock.Any(), testUserID).Return(models.StatusNeedsBackup, nil)

	require.NoError(t, h.run("key", "status"))
	assert.Contains(t, h.stdout.String(), "needs_backup")
	assert.Equal(t, config.KeystoreBackendMemory, h.cfg.Keystore.Backend)
}

func TestKeyStatus_JSON(t *testing.T) {
	h := newHarness(t)
	h.encryption.EXPECT().Status(gomock.Any(), testUserID).Return(models.StatusReady, nil)

	require.NoError(t, h.run("key", "status", "--json"))

	var result models.Result[models.EncryptionStatus]
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &result))
	assert.True(t, result.Success)
	require.NotNil(t, result.Data)
	assert.Equal(t, models.StatusReady, *result.Data)
}

func TestJournalList_JSONError(t *testing.T) {
	h := newHarness(t)
	h.journal.EXPECT().List(gomock.Any(), testUserID, 5).
		Return(nil, &service.CodedError{Code: models.ErrorCodeBackupRequired, Message: service.MsgBackupKey})

	err := h.run("journal", "list", "-n", "5", "--json")
	require.Error(t, err)
	assert.Empty(t, h.stderr.String())

	var result models.Result[[]models.JournalEntry]
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, models.ErrorCodeBackupRequired, result.Code)
	assert.Equal(t, service.MsgBackupKey, result.Error)
}

func TestTextError(t *testing.T) {
	h := newHarness(t)
	h.chat.EXPECT().GetMessages(gomock.Any(), testUserID, 0).
		Return(nil, &service.CodedError{Code: models.ErrorCodeWrongKey, Message: service.MsgWrongKey})

	require.Error(t, h.run("chat", "messages"))
	assert.Contains(t, h.stderr.String(), service.MsgWrongKey)
	assert.Contains(t, h.stderr.String(), string(models.ErrorCodeWrongKey))
	assert.NotContains(t, h.stderr.String(), "Error:")
}

func TestKeyExport(t *testing.T) {
	h := newHarness(t)
	token := "psyche_recovery_v1:u-1:" + strings.Repeat("ab", 32)
	h.encryption.EXPECT().RecoveryKey(gomock.Any(), testUserID).Return(token, nil).Times(2)

	require.NoError(t, h.run("key", "export"))
	assert.Contains(t, h.stdout.String(), token)

	h.stdout.Reset()
	require.NoError(t, h.run("key", "export", "--copy"))
	assert.NotContains(t, h.stdout.String(), token)
	assert.Equal(t, []string{token}, h.clipboard)
}

func TestKeyImport_FromStdin(t *testing.T) {
	h := newHarness(t)
	token := "psyche_recovery_v1:u-1:" + strings.Repeat("cd", 32)
	h.stdin = strings.NewReader(token + "\n")
	h.encryption.EXPECT().ImportRecoveryKey(gomock.Any(), testUserID, token).
		Return(models.ImportResult{Status: models.StatusReady}, nil)

	require.NoError(t, h.run("key", "import"))
	assert.Contains(t, h.stdout.String(), "ready")
}

func TestKeyImport_UserMismatch(t *testing.T) {
	h := newHarness(t)
	h.encryption.EXPECT().ImportRecoveryKey(gomock.Any(), testUserID, "tok").
		Return(models.ImportResult{Status: models.StatusWrongKey, UserMismatch: true}, nil)

	require.NoError(t, h.run("key", "import", "tok"))
	assert.Contains(t, h.stdout.String(), "different account")
}

func TestKeyBackupAndGate(t *testing.T) {
	h := newHarness(t)
	h.encryption.EXPECT().ConfirmBackup(gomock.Any(), testUserID).Return(nil)
	h.encryption.EXPECT().Gate(gomock.Any(), testUserID).Return(models.DestinationHome, nil)

	require.NoError(t, h.run("key", "backup"))
	require.NoError(t, h.run("key", "gate"))
	assert.Contains(t, h.stdout.String(), "Backup confirmed")
	assert.Contains(t, h.stdout.String(), "home")
}

func TestKeyReset_RequiresConfirmation(t *testing.T) {
	h := newHarness(t)

	err := h.run("key", "reset")
	require.ErrorIs(t, err, errResetNotConfirmed)
	assert.Contains(t, h.stderr.String(), "--yes")

	h.encryption.EXPECT().Reset(gomock.Any(), testUserID).Return(nil)
	require.NoError(t, h.run("key", "reset", "--yes"))
}

func TestJournalCreate(t *testing.T) {
	h := newHarness(t)
	h.journal.EXPECT().Create(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.JournalEntry) (models.JournalEntry, error) {
			assert.Equal(t, models.EmotionJoy, e.Emotion)
			assert.Equal(t, 4, e.FeelingIntensity)
			assert.Equal(t, "sunset", e.RecentSmileThing)
			assert.Equal(t, time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), e.CriedAt.UTC())
			e.ID = "e-1"
			return e, nil
		})

	require.NoError(t, h.run("journal", "create",
		"--cried-at", "2026-03-01T20:00:00Z", "--emotion", "joy", "--intensity", "4", "--smile", "sunset"))
	assert.Contains(t, h.stdout.String(), "e-1")
}

func TestJournalCreate_BadTime(t *testing.T) {
	h := newHarness(t)
	require.Error(t, h.run("journal", "create", "--cried-at", "yesterday"))
	assert.Contains(t, h.stderr.String(), "--cried-at")
}

func TestJournalUpdate_OnlyChangedFields(t *testing.T) {
	h := newHarness(t)
	existing := models.JournalEntry{
		ID:               "e-1",
		CriedAt:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Emotion:          models.EmotionStress,
		FeelingIntensity: 8,
		RecentSmileThing: "tea",
	}
	h.journal.EXPECT().Get(gomock.Any(), testUserID, "e-1").Return(existing, nil)
	h.journal.EXPECT().Update(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.JournalEntry) (models.JournalEntry, error) {
			assert.Equal(t, models.EmotionStress, e.Emotion)
			assert.Equal(t, 2, e.FeelingIntensity)
			assert.Equal(t, "tea", e.RecentSmileThing)
			return e, nil
		})

	require.NoError(t, h.run("journal", "update", "e-1", "--intensity", "2"))
}

func TestJournalGetAndDelete(t *testing.T) {
	h := newHarness(t)
	h.journal.EXPECT().Get(gomock.Any(), testUserID, "e-9").Return(models.JournalEntry{
		ID: "e-9", Emotion: models.EmotionProud, FeelingIntensity: 6, RecentSmileThing: "a hike",
	}, nil)
	h.journal.EXPECT().Delete(gomock.Any(), testUserID, "e-9").Return(nil)

	require.NoError(t, h.run("journal", "get", "e-9"))
	assert.Contains(t, h.stdout.String(), "a hike")

	require.NoError(t, h.run("journal", "delete", "e-9"))
	assert.Contains(t, h.stdout.String(), "deleted")
}

func TestChatSend(t *testing.T) {
	h := newHarness(t)
	h.chat.EXPECT().SaveMessage(gomock.Any(), testUserID, models.ChatMessage{
		Role:    models.ChatRoleAssistant,
		Content: "hello",
		Source:  models.ChatSourceApple,
	}).Return(models.ChatMessage{ID: "m-1"}, nil)

	require.NoError(t, h.run("chat", "send", "hello", "--role", "assistant", "--source", "apple"))
	assert.Contains(t, h.stdout.String(), "m-1")
}

func TestChatSummary(t *testing.T) {
	h := newHarness(t)
	h.chat.EXPECT().GetSession(gomock.Any(), testUserID).Return(models.ChatSession{ID: "s-1", UserID: testUserID}, nil)
	h.chat.EXPECT().UpdateSession(gomock.Any(), testUserID, models.ChatSession{ID: "s-1", UserID: testUserID, Summary: "new"}).
		Return(models.ChatSession{ID: "s-1", Summary: "new"}, nil)

	require.NoError(t, h.run("chat", "summary", "new"))
}

func TestChatClearAndMigrate(t *testing.T) {
	h := newHarness(t)
	h.chat.EXPECT().ClearMessages(gomock.Any(), testUserID).Return(nil)
	h.migration.EXPECT().MigrateLegacyChat(gomock.Any(), testUserID).
		Return(models.ChatMigrationResult{MigratedMessages: 12, MigratedSummary: true}, nil)

	require.NoError(t, h.run("chat", "clear"))
	require.NoError(t, h.run("chat", "migrate"))
	assert.Contains(t, h.stdout.String(), "Migrated 12 messages")
}

func TestPrompt(t *testing.T) {
	h := newHarness(t)
	h.prompts.EXPECT().Prompt(gomock.Any(), "greeting").Return("Hi {{name}}", nil)
	h.prompts.EXPECT().ReplaceTemplateVariables("Hi {{name}}", map[string]string{"name": "Ann"}).Return("Hi Ann")

	require.NoError(t, h.run("prompt", "greeting", "--var", "name=Ann"))
	assert.Equal(t, "Hi Ann\n", h.stdout.String())
}

func TestPrompt_NotFound(t *testing.T) {
	h := newHarness(t)
	h.prompts.EXPECT().Prompt(gomock.Any(), "nope").Return("", service.ErrPromptNotFound)

	require.Error(t, h.run("prompt", "nope"))
	assert.Contains(t, h.stderr.String(), service.MsgUnexpected)
	assert.Contains(t, h.stderr.String(), "prompt not found")
}

func TestVersion_NeedsNoSession(t *testing.T) {
	h := newHarness(t)
	err := Execute(context.Background(), []string{"version"},
		WithIO(h.stdin, &h.stdout, &h.stderr),
		WithBuildInfo(BuildInfo{Version: "v1.2.0"}),
		WithBootstrap(func(context.Context, *config.StructuredConfig) (*Session, error) {
			return nil, errors.New("must not connect")
		}),
	)
	require.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "v1.2.0")
	assert.Contains(t, h.stdout.String(), "N/A")
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t)
	err := h.run("key", "status", "--remote", "mysql")
	require.Error(t, err)
	assert.Contains(t, h.stderr.String(), "Error:")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestSession_CloseOrder(t *testing.T) {
	var order []int
	s := NewSession(testUserID, nil,
		closerFunc(func() error { order = append(order, 1); return nil }),
		closerFunc(func() error { order = append(order, 2); return errors.New("busy") }),
	)

	err := s.Close()
	require.Error(t, err)
	assert.Equal(t, []int{2, 1}, order)
	assert.NoError(t, s.Close())
}

func TestResolveUserID(t *testing.T) {
	userID, err := resolveUserID(config.App{UserID: "explicit"})
	require.NoError(t, err)
	assert.Equal(t, "explicit", userID)

	_, err = resolveUserID(config.App{AccessToken: "not-a-jwt"})
	assert.Error(t, err)
}
