// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		UserID      string `json:"user_id"`
		AccessToken string `json:"access_token"`
		LogFile     string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		RemoteBackend string `json:"remote_backend"`
		DB            struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Local struct {
			Path string `json:"path"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		URL            string   `json:"url"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Keystore struct {
		Backend     string `json:"backend"`
		ServiceName string `json:"service_name"`
	} `json:"keystore,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			UserID:      jsonCfg.App.UserID,
			AccessToken: jsonCfg.App.AccessToken,
			LogFile:     jsonCfg.App.LogFile,
		},
		Storage: Storage{
			RemoteBackend: jsonCfg.Storage.RemoteBackend,
			DB:            DB{DSN: jsonCfg.Storage.DB.DSN},
			Local:         Local{Path: jsonCfg.Storage.Local.Path},
		},
		Adapter: Adapter{
			URL:            jsonCfg.Adapter.URL,
			APIKey:         jsonCfg.Adapter.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Keystore: Keystore{
			Backend:     jsonCfg.Keystore.Backend,
			ServiceName: jsonCfg.Keystore.ServiceName,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
