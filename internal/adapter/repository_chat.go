// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const (
	pathChatMessages = "/chat_messages"
	pathChatSessions = "/chat_sessions"
)

type chatMessageWrite struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	ContentEnc string  `json:"content_enc"`
	RoleEnc    string  `json:"role_enc"`
	StateEnc   *string `json:"state_enc"`
	SourceEnc  *string `json:"source_enc"`
}

type chatSessionWrite struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SummaryEnc *string   `json:"summary_enc"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type idRow struct {
	ID string `json:"id"`
}

type chatMessageRepository struct {
	*Client
}

// NewChatMessageRepository returns a [store.ChatMessageRepository] over PostgREST.
func NewChatMessageRepository(c *Client) store.ChatMessageRepository {
	return &chatMessageRepository{Client: c}
}

func (r *chatMessageRepository) CreateMessage(ctx context.Context, row models.ChatMessageRow) (models.ChatMessageRow, error) {
	var created []models.ChatMessageRow
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferRepresentation).
		SetBody(chatMessageWrite{
			ID:         row.ID,
			UserID:     row.UserID,
			ContentEnc: row.ContentEnc,
			RoleEnc:    row.RoleEnc,
			StateEnc:   row.StateEnc,
			SourceEnc:  row.SourceEnc,
		}),
		http.MethodPost, pathChatMessages, &created)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatMessageRepository.CreateMessage").Str("user_id", row.UserID).Msg("failed to insert chat message")
		return models.ChatMessageRow{}, err
	}
	if len(created) == 0 {
		return models.ChatMessageRow{}, ErrUnexpectedResponse
	}

	return created[0], nil
}

func (r *chatMessageRepository) ListMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessageRow, error) {
	rows := make([]models.ChatMessageRow, 0, limit)
	_, err := r.do(r.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("order", "created_at.asc,id.asc").
		SetQueryParam("limit", strconv.Itoa(limit)),
		http.MethodGet, pathChatMessages, &rows)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatMessageRepository.ListMessages").Str("user_id", userID).Msg("failed to list chat messages")
		return nil, err
	}

	return rows, nil
}

func (r *chatMessageRepository) CountMessages(ctx context.Context, userID string) (int, error) {
	resp, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferCountExact).
		SetQueryParam("select", "id").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("limit", "1"),
		http.MethodGet, pathChatMessages, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatMessageRepository.CountMessages").Str("user_id", userID).Msg("failed to count chat messages")
		return 0, err
	}

	return totalFromContentRange(resp.Header().Get(headerContentRange))
}

// DeleteOldestMessages selects the ids of the n oldest messages and deletes
// them in a second request.
func (r *chatMessageRepository) DeleteOldestMessages(ctx context.Context, userID string, n int) error {
	if n <= 0 {
		return nil
	}

	var oldest []idRow
	_, err := r.do(r.request(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("order", "created_at.asc,id.asc").
		SetQueryParam("limit", strconv.Itoa(n)),
		http.MethodGet, pathChatMessages, &oldest)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatMessageRepository.DeleteOldestMessages").Str("user_id", userID).Msg("failed to select oldest chat messages")
		return err
	}
	if len(oldest) == 0 {
		return nil
	}

	ids := make([]string, 0, len(oldest))
	for _, row := range oldest {
		ids = append(ids, row.ID)
	}

	_, err = r.do(r.request(ctx).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("id", in(ids)),
		http.MethodDelete, pathChatMessages, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatMessageRepository.DeleteOldestMessages").Str("user_id", userID).Int("count", len(ids)).Msg("failed to delete oldest chat messages")
		return err
	}
	return nil
}

func (r *chatMessageRepository) DeleteAllMessages(ctx context.Context, userID string) error {
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParam("user_id", eq(userID)),
		http.MethodDelete, pathChatMessages, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatMessageRepository.DeleteAllMessages").Str("user_id", userID).Msg("failed to delete chat messages")
		return err
	}
	return nil
}

type chatSessionRepository struct {
	*Client
}

// NewChatSessionRepository returns a [store.ChatSessionRepository] over PostgREST.
func NewChatSessionRepository(c *Client) store.ChatSessionRepository {
	return &chatSessionRepository{Client: c}
}

func (r *chatSessionRepository) GetLatestSession(ctx context.Context, userID string) (models.ChatSessionRow, error) {
	var rows []models.ChatSessionRow
	_, err := r.do(r.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("order", "created_at.desc").
		SetQueryParam("limit", "1"),
		http.MethodGet, pathChatSessions, &rows)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatSessionRepository.GetLatestSession").Str("user_id", userID).Msg("failed to load chat session")
		return models.ChatSessionRow{}, err
	}
	if len(rows) == 0 {
		return models.ChatSessionRow{}, store.ErrSessionNotFound
	}

	return rows[0], nil
}

func (r *chatSessionRepository) UpsertSession(ctx context.Context, row models.ChatSessionRow) (models.ChatSessionRow, error) {
	var saved []models.ChatSessionRow
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferUpsert).
		SetQueryParam("on_conflict", "id").
		SetBody(chatSessionWrite{
			ID:         row.ID,
			UserID:     row.UserID,
			SummaryEnc: row.SummaryEnc,
			UpdatedAt:  time.Now().UTC(),
		}),
		http.MethodPost, pathChatSessions, &saved)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatSessionRepository.UpsertSession").Str("user_id", row.UserID).Msg("failed to upsert chat session")
		return models.ChatSessionRow{}, err
	}
	if len(saved) == 0 {
		return models.ChatSessionRow{}, ErrUnexpectedResponse
	}

	return saved[0], nil
}

func (r *chatSessionRepository) ClearSummaries(ctx context.Context, userID string) error {
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParam("user_id", eq(userID)).
		SetBody(map[string]any{
			"summary_enc": nil,
			"updated_at":  time.Now().UTC(),
		}),
		http.MethodPatch, pathChatSessions, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatSessionRepository.ClearSummaries").Str("user_id", userID).Msg("failed to clear session summaries")
		return err
	}
	return nil
}

func (r *chatSessionRepository) DeleteAllSessions(ctx context.Context, userID string) error {
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParam("user_id", eq(userID)),
		http.MethodDelete, pathChatSessions, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.chatSessionRepository.DeleteAllSessions").Str("user_id", userID).Msg("failed to delete chat sessions")
		return err
	}
	return nil
}
