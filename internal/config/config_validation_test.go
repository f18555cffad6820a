// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	postgrest := func() *StructuredConfig {
		return &StructuredConfig{
			App:      App{AccessToken: "tok"},
			Storage:  Storage{RemoteBackend: RemoteBackendPostgREST, Local: Local{Path: "l.db"}},
			Adapter:  Adapter{URL: "https://api.test", APIKey: "anon", RequestTimeout: time.Second},
			Keystore: Keystore{Backend: KeystoreBackendKeyring, ServiceName: "svc"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid postgrest", mutate: func(*StructuredConfig) {}},
		{
			name: "valid postgres with user id only",
			mutate: func(cfg *StructuredConfig) {
				cfg.App = App{UserID: "u-1"}
				cfg.Storage.RemoteBackend = RemoteBackendPostgres
				cfg.Storage.DB.DSN = "postgres://db"
			},
		},
		{
			name:    "no identity",
			mutate:  func(cfg *StructuredConfig) { cfg.App = App{} },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "postgrest without token",
			mutate:  func(cfg *StructuredConfig) { cfg.App = App{UserID: "u-1"} },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "postgrest without url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.URL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "postgrest without timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.RemoteBackend = RemoteBackendPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown remote",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.RemoteBackend = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty local path",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Local.Path = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown keystore",
			mutate:  func(cfg *StructuredConfig) { cfg.Keystore.Backend = "vault" },
			wantErr: ErrInvalidKeystoreConfigs,
		},
		{
			name:    "keyring without service",
			mutate:  func(cfg *StructuredConfig) { cfg.Keystore.ServiceName = "" },
			wantErr: ErrInvalidKeystoreConfigs,
		},
		{
			name: "memory keystore needs no service",
			mutate: func(cfg *StructuredConfig) {
				cfg.Keystore = Keystore{Backend: KeystoreBackendMemory}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := postgrest()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
