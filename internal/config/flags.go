// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a string flag restricted to a fixed set of values.
// It implements pflag.Value.
type choiceValue struct {
	target  *string
	choices []string
}

func (c *choiceValue) String() string {
	if c.target == nil {
		return ""
	}
	return *c.target
}

func (c *choiceValue) Set(s string) error {
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
	}
	*c.target = s
	return nil
}

func (c *choiceValue) Type() string {
	return "string"
}

// BindFlags registers the configuration flags on fs and returns the config
// they are written into once fs is parsed.
//
// Flags:
//
//	--user-id           signed-in user id
//	--access-token      session JWT
//	--log-file          client log file path
//	--remote            remote backend: postgres | postgrest
//	-d, --dsn           PostgreSQL DSN
//	--local-db          device SQLite file
//	--api-url           PostgREST base URL
//	--api-key           PostgREST anon key
//	--request-timeout   timeout of remote requests (e.g. 30s)
//	--keystore          key slot backend: keyring | sqlite | memory
//	--keystore-service  OS keychain service name
//	-c, --config        JSON config file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.App.UserID, "user-id", "", "Signed-in user id")
	fs.StringVar(&cfg.App.AccessToken, "access-token", "", "Session access token (JWT)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file path")

	fs.Var(&choiceValue{
		target:  &cfg.Storage.RemoteBackend,
		choices: []string{RemoteBackendPostgres, RemoteBackendPostgREST},
	}, "remote", "Remote backend: postgres or postgrest")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.Storage.Local.Path, "local-db", "", "Device SQLite file")

	fs.StringVar(&cfg.Adapter.URL, "api-url", "", "PostgREST base URL")
	fs.StringVar(&cfg.Adapter.APIKey, "api-key", "", "PostgREST anon key")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Remote request timeout (e.g. 30s)")

	fs.Var(&choiceValue{
		target:  &cfg.Keystore.Backend,
		choices: []string{KeystoreBackendKeyring, KeystoreBackendSQLite, KeystoreBackendMemory},
	}, "keystore", "Key slot backend: keyring, sqlite or memory")
	fs.StringVar(&cfg.Keystore.ServiceName, "keystore-service", "", "OS keychain service name")

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
