// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-psyche-vault/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildListEntriesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListEntriesQuery(pgBuilder, "u-1", 20)
	require.NoError(t, err)

	require.Equal(t, []any{"u-1"}, args)

	q := strings.ToLower(query)
	for _, col := range journalColumns {
		require.Contains(t, q, col)
	}
	require.Contains(t, q, "from cries")
	require.Contains(t, q, "order by cried_at desc")
	require.Contains(t, q, "limit 20")
	require.Contains(t, query, "$1")
}

func Test_buildSetKeyCheckIfAbsentQuery_OnlyFillsNull(t *testing.T) {
	query, args, err := buildSetKeyCheckIfAbsentQuery(pgBuilder, "u-1", "enc_v1:x")
	require.NoError(t, err)

	assert.Equal(t, []any{"u-1", "enc_v1:x"}, args)
	assert.Contains(t, query, "ON CONFLICT (id)")
	assert.Contains(t, query, "WHERE users_data.encryption_key_check IS NULL")
}

func Test_buildDeleteOldestMessagesQuery_Placeholders(t *testing.T) {
	query, args, err := buildDeleteOldestMessagesQuery(pgBuilder, "u-1", 4)
	require.NoError(t, err)

	assert.Equal(t, []any{"u-1", "u-1"}, args)
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")
	assert.NotContains(t, query, "?")
	assert.Contains(t, query, "ORDER BY created_at ASC, id ASC LIMIT 4")
}

func Test_buildCreateMessageQuery_NullableColumns(t *testing.T) {
	row := models.ChatMessageRow{ID: "m", UserID: "u", ContentEnc: "c", RoleEnc: "r"}

	_, args, err := buildCreateMessageQuery(pgBuilder, row)
	require.NoError(t, err)
	require.Len(t, args, 6)
	assert.Nil(t, args[4])
	assert.Nil(t, args[5])
}

func Test_buildDeleteEntriesQuery(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		wantArgs []any
		wantIn   bool
	}{
		{name: "all entries", ids: nil, wantArgs: []any{"u-1"}, wantIn: false},
		{name: "single entry", ids: []string{"e-1"}, wantArgs: []any{"e-1", "u-1"}, wantIn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteEntriesQuery(pgBuilder, "u-1", tt.ids...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, args)
			assert.Equal(t, tt.wantIn, strings.Contains(query, "id IN"))
		})
	}
}

func Test_buildSetItemQuery_SQLite(t *testing.T) {
	query, args, err := buildSetItemQuery(sqliteBuilder, TableLocalItems, "k", "v")
	require.NoError(t, err)

	assert.Equal(t, []any{"k", "v"}, args)
	assert.Contains(t, query, "INSERT INTO local_items")
	assert.Contains(t, query, "VALUES (?,?)")
	assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE")
}
