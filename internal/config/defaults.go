// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultLocalPath      = "psyche.db"
	defaultRequestTimeout = 30 * time.Second
	defaultServiceName    = "psyche-vault"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			RemoteBackend: RemoteBackendPostgREST,
			Local:         Local{Path: defaultLocalPath},
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
		Keystore: Keystore{
			Backend:     KeystoreBackendKeyring,
			ServiceName: defaultServiceName,
		},
	}
}
