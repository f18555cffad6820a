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

const pathCries = "/cries"

// journalWrite is the column subset sent on insert and update; timestamps
// are assigned by the database.
type journalWrite struct {
	ID                  string    `json:"id,omitempty"`
	UserID              string    `json:"user_id,omitempty"`
	CriedAt             time.Time `json:"cried_at"`
	EmotionsEnc         string    `json:"emotions_enc"`
	FeelingIntensityEnc string    `json:"feeling_intensity_enc"`
	ThoughtsEnc         string    `json:"thoughts_enc"`
	RecentSmileThingEnc string    `json:"recent_smile_thing_enc"`
	UpdatedAt           time.Time `json:"updated_at,omitzero"`
}

type journalRepository struct {
	*Client
}

// NewJournalRepository returns a [store.JournalRepository] over PostgREST.
func NewJournalRepository(c *Client) store.JournalRepository {
	return &journalRepository{Client: c}
}

func (r *journalRepository) CreateEntry(ctx context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error) {
	var created []models.JournalEntryRow
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferRepresentation).
		SetBody(journalWrite{
			ID:                  row.ID,
			UserID:              row.UserID,
			CriedAt:             row.CriedAt,
			EmotionsEnc:         row.EmotionsEnc,
			FeelingIntensityEnc: row.FeelingIntensityEnc,
			ThoughtsEnc:         row.ThoughtsEnc,
			RecentSmileThingEnc: row.RecentSmileThingEnc,
		}),
		http.MethodPost, pathCries, &created)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.journalRepository.CreateEntry").Str("user_id", row.UserID).Msg("failed to insert journal entry")
		return models.JournalEntryRow{}, err
	}
	if len(created) == 0 {
		return models.JournalEntryRow{}, ErrUnexpectedResponse
	}

	return created[0], nil
}

func (r *journalRepository) GetEntry(ctx context.Context, userID, id string) (models.JournalEntryRow, error) {
	var rows []models.JournalEntryRow
	_, err := r.do(r.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("id", eq(id)),
		http.MethodGet, pathCries, &rows)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.journalRepository.GetEntry").Str("user_id", userID).Msg("failed to load journal entry")
		return models.JournalEntryRow{}, err
	}
	if len(rows) == 0 {
		return models.JournalEntryRow{}, store.ErrEntryNotFound
	}

	return rows[0], nil
}

func (r *journalRepository) ListEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntryRow, error) {
	rows := make([]models.JournalEntryRow, 0, limit)
	_, err := r.do(r.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("order", "cried_at.desc").
		SetQueryParam("limit", strconv.Itoa(limit)),
		http.MethodGet, pathCries, &rows)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.journalRepository.ListEntries").Str("user_id", userID).Msg("failed to list journal entries")
		return nil, err
	}

	return rows, nil
}

func (r *journalRepository) UpdateEntry(ctx context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error) {
	var updated []models.JournalEntryRow
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferRepresentation).
		SetQueryParam("user_id", eq(row.UserID)).
		SetQueryParam("id", eq(row.ID)).
		SetBody(journalWrite{
			CriedAt:             row.CriedAt,
			EmotionsEnc:         row.EmotionsEnc,
			FeelingIntensityEnc: row.FeelingIntensityEnc,
			ThoughtsEnc:         row.ThoughtsEnc,
			RecentSmileThingEnc: row.RecentSmileThingEnc,
			UpdatedAt:           time.Now().UTC(),
		}),
		http.MethodPatch, pathCries, &updated)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.journalRepository.UpdateEntry").Str("user_id", row.UserID).Msg("failed to update journal entry")
		return models.JournalEntryRow{}, err
	}
	if len(updated) == 0 {
		return models.JournalEntryRow{}, store.ErrEntryNotFound
	}

	return updated[0], nil
}

func (r *journalRepository) DeleteEntry(ctx context.Context, userID, id string) error {
	var deleted []models.JournalEntryRow
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferRepresentation).
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("id", eq(id)),
		http.MethodDelete, pathCries, &deleted)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.journalRepository.DeleteEntry").Str("user_id", userID).Msg("failed to delete journal entry")
		return err
	}
	if len(deleted) == 0 {
		return store.ErrEntryNotFound
	}
	return nil
}

func (r *journalRepository) DeleteAllEntries(ctx context.Context, userID string) error {
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParam("user_id", eq(userID)),
		http.MethodDelete, pathCries, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.journalRepository.DeleteAllEntries").Str("user_id", userID).Msg("failed to delete journal entries")
		return err
	}
	return nil
}
