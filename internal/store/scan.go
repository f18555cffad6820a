// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-psyche-vault/models"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournalRow(s rowScanner) (models.JournalEntryRow, error) {
	var row models.JournalEntryRow
	err := s.Scan(
		&row.ID,
		&row.UserID,
		&row.CriedAt,
		&row.EmotionsEnc,
		&row.FeelingIntensityEnc,
		&row.ThoughtsEnc,
		&row.RecentSmileThingEnc,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}

func scanChatMessageRow(s rowScanner) (models.ChatMessageRow, error) {
	var row models.ChatMessageRow
	err := s.Scan(
		&row.ID,
		&row.UserID,
		&row.ContentEnc,
		&row.RoleEnc,
		&row.StateEnc,
		&row.SourceEnc,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}

func scanChatSessionRow(s rowScanner) (models.ChatSessionRow, error) {
	var row models.ChatSessionRow
	err := s.Scan(
		&row.ID,
		&row.UserID,
		&row.SummaryEnc,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}
