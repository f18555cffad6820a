// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/internal/mock"
	"github.com/MKhiriev/go-psyche-vault/internal/validators"
	"github.com/MKhiriev/go-psyche-vault/models"
)

func TestChat_SaveAndRead(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	s.ready(t)

	saved, err := s.services.Chat.SaveMessage(ctx, testUserID, models.ChatMessage{
		Role:    models.ChatRoleAssistant,
		Content: "How are you feeling today?",
		State:   models.ChatStateExploration,
		Source:  models.ChatSourceMistral,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	row := s.remote.messages[0]
	assert.True(t, crypto.IsEnvelope(row.ContentEnc))
	assert.True(t, crypto.IsEnvelope(row.RoleEnc))
	require.NotNil(t, row.StateEnc)
	require.NotNil(t, row.SourceEnc)

	_, err = s.services.Chat.SaveMessage(ctx, testUserID, models.ChatMessage{Role: models.ChatRoleUser, Content: "tired"})
	require.NoError(t, err)
	assert.Nil(t, s.remote.messages[1].StateEnc)
	assert.Nil(t, s.remote.messages[1].SourceEnc)

	messages, err := s.services.Chat.GetMessages(ctx, testUserID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "How are you feeling today?", messages[0].Content)
	assert.Equal(t, models.ChatStateExploration, messages[0].State)
	assert.Equal(t, models.ChatSourceMistral, messages[0].Source)
	assert.Equal(t, models.ChatRoleUser, messages[1].Role)
	assert.Empty(t, messages[1].State)
}

func TestChat_Retention(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	s.ready(t)

	for i := range MessageRetentionLimit + 1 {
		_, err := s.services.Chat.SaveMessage(ctx, testUserID, models.ChatMessage{Role: models.ChatRoleUser, Content: fmt.Sprintf("message %d", i)})
		require.NoError(t, err)
	}

	messages, err := s.services.Chat.GetMessages(ctx, testUserID, 100)
	require.NoError(t, err)
	require.Len(t, messages, MessageRetentionLimit)
	assert.Equal(t, "message 1", messages[0].Content)
	assert.Equal(t, fmt.Sprintf("message %d", MessageRetentionLimit), messages[len(messages)-1].Content)
}

func TestChat_TrimFailureKeepsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mock.NewMockChatMessageRepository(ctrl)
	sessions := mock.NewMockChatSessionRepository(ctrl)
	encryption := mock.NewMockEncryptionService(ctrl)
	ctx := context.Background()
	key := newKey(t)

	chat := NewChatService(messages, sessions, encryption, crypto.NewEnvelopeCipher(), validators.NewDomainValidator())

	encryption.EXPECT().ReadyKey(ctx, testUserID).Return(key, nil)
	messages.EXPECT().CreateMessage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row models.ChatMessageRow) (models.ChatMessageRow, error) {
		return row, nil
	})
	messages.EXPECT().CountMessages(ctx, testUserID).Return(MessageRetentionLimit+3, nil)
	messages.EXPECT().DeleteOldestMessages(ctx, testUserID, 3).Return(errors.New("statement timeout"))

	saved, err := chat.SaveMessage(ctx, testUserID, models.ChatMessage{Role: models.ChatRoleUser, Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", saved.Content)
}

func TestChat_CountFailureSkipsTrim(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mock.NewMockChatMessageRepository(ctrl)
	encryption := mock.NewMockEncryptionService(ctrl)
	ctx := context.Background()

	chat := NewChatService(messages, mock.NewMockChatSessionRepository(ctrl), encryption, crypto.NewEnvelopeCipher(), validators.NewDomainValidator())

	encryption.EXPECT().ReadyKey(ctx, testUserID).Return(newKey(t), nil)
	messages.EXPECT().CreateMessage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row models.ChatMessageRow) (models.ChatMessageRow, error) {
		return row, nil
	})
	messages.EXPECT().CountMessages(ctx, testUserID).Return(0, errors.New("connection refused"))

	_, err := chat.SaveMessage(ctx, testUserID, models.ChatMessage{Role: models.ChatRoleUser, Content: "hello"})
	require.NoError(t, err)
}

func TestChat_InvalidMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat := NewChatService(
		mock.NewMockChatMessageRepository(ctrl),
		mock.NewMockChatSessionRepository(ctrl),
		mock.NewMockEncryptionService(ctrl),
		crypto.NewEnvelopeCipher(),
		validators.NewDomainValidator(),
	)

	for _, msg := range []models.ChatMessage{
		{Role: "system", Content: "x"},
		{Role: models.ChatRoleUser},
		{Role: models.ChatRoleUser, Content: "x", State: "bored"},
		{Role: models.ChatRoleUser, Content: "x", Source: "openai"},
	} {
		_, err := chat.SaveMessage(context.Background(), testUserID, msg)
		requireCode(t, err, models.ErrorCodeUnknown)
		assert.Equal(t, MsgInvalidMessage, MessageOf(err))
		assert.ErrorIs(t, err, ErrInvalidMessage)
	}
}

func TestChat_NotReady(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	_, err := s.services.Chat.GetMessages(ctx, testUserID, 10)
	requireCode(t, err, models.ErrorCodeBackupRequired)

	_, err = s.services.Chat.SaveMessage(ctx, testUserID, models.ChatMessage{Role: models.ChatRoleUser, Content: "hi"})
	requireCode(t, err, models.ErrorCodeBackupRequired)
	assert.Empty(t, s.remote.messages)

	_, err = s.services.Chat.GetSession(ctx, testUserID)
	requireCode(t, err, models.ErrorCodeBackupRequired)

	requireCode(t, s.services.Chat.ClearMessages(ctx, testUserID), models.ErrorCodeBackupRequired)
}

func TestChat_Session(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	s.ready(t)
	chat := s.services.Chat

	session, err := chat.GetSession(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, session.ID)
	assert.Equal(t, testUserID, session.UserID)

	session.Summary = "discussed sleep"
	saved, err := chat.UpdateSession(ctx, testUserID, session)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	require.NotNil(t, s.remote.sessions[0].SummaryEnc)
	assert.True(t, crypto.IsEnvelope(*s.remote.sessions[0].SummaryEnc))

	saved.Summary = "discussed sleep and work"
	_, err = chat.UpdateSession(ctx, testUserID, saved)
	require.NoError(t, err)
	assert.Len(t, s.remote.sessions, 1)

	got, err := chat.GetSession(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "discussed sleep and work", got.Summary)
	assert.Equal(t, saved.ID, got.ID)
}

func TestChat_ClearMessages(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	s.ready(t)

	_, err := s.services.Chat.SaveMessage(ctx, testUserID, models.ChatMessage{Role: models.ChatRoleUser, Content: "hi"})
	require.NoError(t, err)
	_, err = s.services.Chat.UpdateSession(ctx, testUserID, models.ChatSession{Summary: "greeting"})
	require.NoError(t, err)

	require.NoError(t, s.services.Chat.ClearMessages(ctx, testUserID))

	assert.Empty(t, s.remote.messages)
	require.Len(t, s.remote.sessions, 1)
	assert.Nil(t, s.remote.sessions[0].SummaryEnc)

	session, err := s.services.Chat.GetSession(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, session.Summary)
}

func TestChat_UndecryptableMessage(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	s.ready(t)

	_, err := s.services.Chat.SaveMessage(ctx, testUserID, models.ChatMessage{Role: models.ChatRoleUser, Content: "hi"})
	require.NoError(t, err)

	foreign, err := crypto.NewEnvelopeCipher().Encrypt(newKey(t), "hi")
	require.NoError(t, err)
	s.remote.messages[0].ContentEnc = foreign

	_, err = s.services.Chat.GetMessages(ctx, testUserID, 10)
	requireCode(t, err, models.ErrorCodeWrongKey)
}
