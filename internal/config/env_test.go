// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllGroups(t *testing.T) {
	t.Setenv("APP_USER_ID", "u-1")
	t.Setenv("APP_ACCESS_TOKEN", "token")
	t.Setenv("APP_LOG_FILE", "/tmp/psyche.log")
	t.Setenv("STORAGE_REMOTE_BACKEND", "postgrest")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://db")
	t.Setenv("STORAGE_LOCAL_PATH", "/tmp/local.db")
	t.Setenv("ADAPTER_URL", "https://example.test/rest/v1")
	t.Setenv("ADAPTER_API_KEY", "anon")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "15s")
	t.Setenv("KEYSTORE_BACKEND", "sqlite")
	t.Setenv("KEYSTORE_SERVICE_NAME", "svc")
	t.Setenv("CONFIG", "/etc/psyche.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "u-1", cfg.App.UserID)
	assert.Equal(t, "token", cfg.App.AccessToken)
	assert.Equal(t, "/tmp/psyche.log", cfg.App.LogFile)
	assert.Equal(t, RemoteBackendPostgREST, cfg.Storage.RemoteBackend)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/local.db", cfg.Storage.Local.Path)
	assert.Equal(t, "https://example.test/rest/v1", cfg.Adapter.URL)
	assert.Equal(t, "anon", cfg.Adapter.APIKey)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, KeystoreBackendSQLite, cfg.Keystore.Backend)
	assert.Equal(t, "svc", cfg.Keystore.ServiceName)
	assert.Equal(t, "/etc/psyche.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	assert.ErrorContains(t, err, "error getting env configs")
}
