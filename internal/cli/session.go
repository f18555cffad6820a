// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/MKhiriev/go-psyche-vault/internal/adapter"
	"github.com/MKhiriev/go-psyche-vault/internal/config"
	"github.com/MKhiriev/go-psyche-vault/internal/keystore"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/service"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
)

// Session is the signed-in user together with the services bound to the
// configured backends.
type Session struct {
	UserID   string
	Services *service.Services

	closers []io.Closer
}

// NewSession wraps already built services. closers are released by Close in
// reverse order.
func NewSession(userID string, services *service.Services, closers ...io.Closer) *Session {
	return &Session{UserID: userID, Services: services, closers: closers}
}

// Close releases the database handles of the session.
func (s *Session) Close() error {
	var errs []error
	for _, c := range slices.Backward(s.closers) {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// Bootstrap opens a session for cfg. The logger is taken from ctx.
type Bootstrap func(ctx context.Context, cfg *config.StructuredConfig) (*Session, error)

// Connect is the production [Bootstrap]. It opens the device database,
// the remote backend and the key slot storage named by cfg.
func Connect(ctx context.Context, cfg *config.StructuredConfig) (*Session, error) {
	log := logger.FromContext(ctx)

	userID, err := resolveUserID(cfg.App)
	if err != nil {
		return nil, err
	}

	localDB, err := store.NewConnectSQLite(ctx, cfg.Storage.Local.Path, log)
	if err != nil {
		return nil, fmt.Errorf("open device database: %w", err)
	}
	session := &Session{UserID: userID, closers: []io.Closer{localDB}}

	if err = localDB.Migrate(); err != nil {
		log.Err(err).Str("func", "cli.Connect").Msg("failed to migrate device database")
		return nil, errors.Join(fmt.Errorf("migrate device database: %w", err), session.Close())
	}
	local := store.NewLocalStorages(localDB)

	remote, err := connectRemote(ctx, cfg, session, log)
	if err != nil {
		return nil, errors.Join(err, session.Close())
	}

	keys, err := openKeyStore(cfg.Keystore, local)
	if err != nil {
		return nil, errors.Join(err, session.Close())
	}

	session.Services = service.NewServices(remote, keys, local.Items)
	log.Debug().Str("func", "cli.Connect").Str("user_id", userID).
		Str("remote", cfg.Storage.RemoteBackend).Str("keystore", cfg.Keystore.Backend).Msg("session opened")
	return session, nil
}

func connectRemote(ctx context.Context, cfg *config.StructuredConfig, session *Session, log *logger.Logger) (*store.Storages, error) {
	switch cfg.Storage.RemoteBackend {
	case config.RemoteBackendPostgres:
		db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, fmt.Errorf("open remote database: %w", err)
		}
		session.closers = append(session.closers, db)
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "cli.connectRemote").Msg("failed to migrate remote database")
			return nil, fmt.Errorf("migrate remote database: %w", err)
		}
		return store.NewPostgresStorages(db, log), nil

	case config.RemoteBackendPostgREST:
		client, err := adapter.NewPostgRESTClient(cfg.Adapter, cfg.App.AccessToken, log)
		if err != nil {
			return nil, fmt.Errorf("create postgrest client: %w", err)
		}
		return adapter.NewPostgRESTStorages(client), nil
	}
	return nil, fmt.Errorf("unknown remote backend %q", cfg.Storage.RemoteBackend)
}

func openKeyStore(cfg config.Keystore, local *store.LocalStorages) (keystore.KeyStore, error) {
	switch cfg.Backend {
	case config.KeystoreBackendKeyring:
		storage, err := keystore.OpenKeyringStorage(cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		return keystore.NewKeyStore(storage), nil
	case config.KeystoreBackendSQLite:
		return keystore.NewKeyStore(local.SecureItems), nil
	case config.KeystoreBackendMemory:
		return keystore.NewKeyStore(keystore.NewMemoryStorage()), nil
	}
	return nil, fmt.Errorf("unknown keystore backend %q", cfg.Backend)
}

// resolveUserID prefers the configured id and falls back to the subject of
// the access token.
func resolveUserID(cfg config.App) (string, error) {
	if cfg.UserID != "" {
		return cfg.UserID, nil
	}
	userID, err := adapter.UserIDFromAccessToken(cfg.AccessToken)
	if err != nil {
		return "", fmt.Errorf("resolve user id: %w", err)
	}
	return userID, nil
}
