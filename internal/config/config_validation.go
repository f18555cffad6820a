// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] is usable.
// All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.UserID == "" && cfg.App.AccessToken == "" {
		errs = append(errs, fmt.Errorf("%w: user id or access token is required", ErrInvalidAppConfigs))
	}

	switch cfg.Storage.RemoteBackend {
	case RemoteBackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: postgres backend needs a DSN", ErrInvalidStorageConfigs))
		}
	case RemoteBackendPostgREST:
		if cfg.Adapter.URL == "" || cfg.Adapter.APIKey == "" || cfg.Adapter.RequestTimeout <= 0 {
			errs = append(errs, fmt.Errorf("%w: postgrest backend needs url, api key and request timeout", ErrInvalidAdapterConfigs))
		}
		if cfg.App.AccessToken == "" {
			errs = append(errs, fmt.Errorf("%w: postgrest backend needs an access token", ErrInvalidAppConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown remote backend %q", ErrInvalidStorageConfigs, cfg.Storage.RemoteBackend))
	}

	if cfg.Storage.Local.Path == "" {
		errs = append(errs, fmt.Errorf("%w: local database path is empty", ErrInvalidStorageConfigs))
	}

	switch cfg.Keystore.Backend {
	case KeystoreBackendKeyring:
		if cfg.Keystore.ServiceName == "" {
			errs = append(errs, fmt.Errorf("%w: keychain service name is empty", ErrInvalidKeystoreConfigs))
		}
	case KeystoreBackendSQLite, KeystoreBackendMemory:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown keystore backend %q", ErrInvalidKeystoreConfigs, cfg.Keystore.Backend))
	}

	return errors.Join(errs...)
}
