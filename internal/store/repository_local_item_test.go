// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
)

func newTestLocalDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func TestLocalItemRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	local := NewLocalStorages(newTestLocalDB(t))

	_, err := local.Items.GetItem(ctx, "flag")
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, local.Items.SetItem(ctx, "flag", "false"))
	require.NoError(t, local.Items.SetItem(ctx, "flag", "true"))

	value, err := local.Items.GetItem(ctx, "flag")
	require.NoError(t, err)
	assert.Equal(t, "true", value)

	require.NoError(t, local.Items.DeleteItem(ctx, "flag"))
	_, err = local.Items.GetItem(ctx, "flag")
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.NoError(t, local.Items.DeleteItem(ctx, "flag"))
}

func TestLocalItemRepository_TablesAreSeparate(t *testing.T) {
	ctx := context.Background()
	local := NewLocalStorages(newTestLocalDB(t))

	require.NoError(t, local.SecureItems.SetItem(ctx, "enc_key_v1_u-1", "ab"))

	_, err := local.Items.GetItem(ctx, "enc_key_v1_u-1")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "psyche.db")

	db, err := NewConnectSQLite(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	assert.FileExists(t, path)
}
