// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-psyche-vault/models"
)

const (
	tableProfiles     = "users_data"
	tableCries        = "cries"
	tableChatMessages = "chat_messages"
	tableChatSessions = "chat_sessions"
	tablePrompts      = "prompts"

	// TableSecureItems holds key slots when KEYSTORE_BACKEND=sqlite.
	TableSecureItems = "secure_items"
	// TableLocalItems holds device flags and the legacy chat cache.
	TableLocalItems = "local_items"
)

var (
	profileColumns     = []string{"id", "encryption_key_check"}
	journalColumns     = []string{"id", "user_id", "cried_at", "emotions_enc", "feeling_intensity_enc", "thoughts_enc", "recent_smile_thing_enc", "created_at", "updated_at"}
	chatMessageColumns = []string{"id", "user_id", "content_enc", "role_enc", "state_enc", "source_enc", "created_at", "updated_at"}
	chatSessionColumns = []string{"id", "user_id", "summary_enc", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── profiles ──────────────────────────────────────────────────────────────────

func buildGetProfileQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(profileColumns...).
		From(tableProfiles).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildSetKeyCheckIfAbsentQuery upserts the profile but only replaces a null
// key-check; an existing one makes the statement affect zero rows.
func buildSetKeyCheckIfAbsentQuery(b sq.StatementBuilderType, userID, keyCheck string) (string, []any, error) {
	return b.Insert(tableProfiles).
		Columns("id", "encryption_key_check").
		Values(userID, keyCheck).
		Suffix("ON CONFLICT (id) DO UPDATE SET encryption_key_check = EXCLUDED.encryption_key_check, updated_at = NOW() WHERE " + tableProfiles + ".encryption_key_check IS NULL").
		ToSql()
}

func buildClearKeyCheckQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Update(tableProfiles).
		Set("encryption_key_check", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ── journal ───────────────────────────────────────────────────────────────────

func buildCreateEntryQuery(b sq.StatementBuilderType, row models.JournalEntryRow) (string, []any, error) {
	return b.Insert(tableCries).
		Columns("id", "user_id", "cried_at", "emotions_enc", "feeling_intensity_enc", "thoughts_enc", "recent_smile_thing_enc").
		Values(row.ID, row.UserID, row.CriedAt, row.EmotionsEnc, row.FeelingIntensityEnc, row.ThoughtsEnc, row.RecentSmileThingEnc).
		Suffix(returning(journalColumns)).
		ToSql()
}

func buildGetEntryQuery(b sq.StatementBuilderType, userID, id string) (string, []any, error) {
	return b.Select(journalColumns...).
		From(tableCries).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType, userID string, limit int) (string, []any, error) {
	return b.Select(journalColumns...).
		From(tableCries).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("cried_at DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildUpdateEntryQuery(b sq.StatementBuilderType, row models.JournalEntryRow) (string, []any, error) {
	return b.Update(tableCries).
		Set("cried_at", row.CriedAt).
		Set("emotions_enc", row.EmotionsEnc).
		Set("feeling_intensity_enc", row.FeelingIntensityEnc).
		Set("thoughts_enc", row.ThoughtsEnc).
		Set("recent_smile_thing_enc", row.RecentSmileThingEnc).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": row.UserID, "id": row.ID}).
		Suffix(returning(journalColumns)).
		ToSql()
}

func buildDeleteEntriesQuery(b sq.StatementBuilderType, userID string, ids ...string) (string, []any, error) {
	where := sq.Eq{"user_id": userID}
	if len(ids) > 0 {
		where["id"] = ids
	}
	return b.Delete(tableCries).Where(where).ToSql()
}

// ── chat messages ─────────────────────────────────────────────────────────────

func buildCreateMessageQuery(b sq.StatementBuilderType, row models.ChatMessageRow) (string, []any, error) {
	return b.Insert(tableChatMessages).
		Columns("id", "user_id", "content_enc", "role_enc", "state_enc", "source_enc").
		Values(row.ID, row.UserID, row.ContentEnc, row.RoleEnc, row.StateEnc, row.SourceEnc).
		Suffix(returning(chatMessageColumns)).
		ToSql()
}

func buildListMessagesQuery(b sq.StatementBuilderType, userID string, limit int) (string, []any, error) {
	return b.Select(chatMessageColumns...).
		From(tableChatMessages).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
}

func buildCountMessagesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(tableChatMessages).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildDeleteOldestMessagesQuery deletes the n oldest messages in one
// statement. The subquery keeps the default "?" placeholders; the outer
// builder rewrites all of them.
func buildDeleteOldestMessagesQuery(b sq.StatementBuilderType, userID string, n int) (string, []any, error) {
	oldest := sq.Select("id").
		From(tableChatMessages).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(n))

	return b.Delete(tableChatMessages).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("id IN (?)", oldest)).
		ToSql()
}

func buildDeleteAllMessagesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(tableChatMessages).Where(sq.Eq{"user_id": userID}).ToSql()
}

// ── chat sessions ─────────────────────────────────────────────────────────────

func buildGetLatestSessionQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(chatSessionColumns...).
		From(tableChatSessions).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
}

func buildUpsertSessionQuery(b sq.StatementBuilderType, row models.ChatSessionRow) (string, []any, error) {
	return b.Insert(tableChatSessions).
		Columns("id", "user_id", "summary_enc").
		Values(row.ID, row.UserID, row.SummaryEnc).
		Suffix("ON CONFLICT (id) DO UPDATE SET summary_enc = EXCLUDED.summary_enc, updated_at = NOW() " +
			"WHERE " + tableChatSessions + ".user_id = EXCLUDED.user_id " + returning(chatSessionColumns)).
		ToSql()
}

func buildClearSummariesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Update(tableChatSessions).
		Set("summary_enc", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteAllSessionsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(tableChatSessions).Where(sq.Eq{"user_id": userID}).ToSql()
}

// ── prompts ───────────────────────────────────────────────────────────────────

func buildGetPromptQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("name", "prompt").
		From(tablePrompts).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// ── local items ───────────────────────────────────────────────────────────────

func buildGetItemQuery(b sq.StatementBuilderType, table, key string) (string, []any, error) {
	return b.Select("value").From(table).Where(sq.Eq{"key": key}).ToSql()
}

func buildSetItemQuery(b sq.StatementBuilderType, table, key, value string) (string, []any, error) {
	return b.Insert(table).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, table, key string) (string, []any, error) {
	return b.Delete(table).Where(sq.Eq{"key": key}).ToSql()
}
