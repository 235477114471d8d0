// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-vault-broker/models"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Secret            string   `json:"secret"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		RequireStableKeys bool     `json:"require_stable_keys"`
		LogLevel          string   `json:"log_level"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Vault struct {
		MasterKey   string   `json:"master_key"`
		IdleTimeout Duration `json:"idle_timeout"`
	} `json:"vault,omitempty"`

	Gateway struct {
		Key          string   `json:"key"`
		Address      string   `json:"address"`
		ProbeTimeout Duration `json:"probe_timeout"`
	} `json:"gateway,omitempty"`

	// Proxy uses the connector's own field names so operators can paste the
	// same object they store per host.
	Proxy *models.ProxyConfig `json:"proxy,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SweepInterval       Duration `json:"sweep_interval"`
		HealthCheckInterval Duration `json:"health_check_interval"`
		MetricsInterval     Duration `json:"metrics_interval"`
		MigrateOnStart      bool     `json:"migrate_on_start"`
	} `json:"workers,omitempty"`
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
			Secret:            jsonCfg.App.Secret,
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			RequireStableKeys: jsonCfg.App.RequireStableKeys,
			LogLevel:          jsonCfg.App.LogLevel,
			Version:           jsonCfg.App.Version,
		},
		Vault: Vault{
			MasterKey:   jsonCfg.Vault.MasterKey,
			IdleTimeout: time.Duration(jsonCfg.Vault.IdleTimeout),
		},
		Gateway: Gateway{
			Key:          jsonCfg.Gateway.Key,
			Address:      jsonCfg.Gateway.Address,
			ProbeTimeout: time.Duration(jsonCfg.Gateway.ProbeTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval:       time.Duration(jsonCfg.Workers.SweepInterval),
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
			MetricsInterval:     time.Duration(jsonCfg.Workers.MetricsInterval),
			MigrateOnStart:      jsonCfg.Workers.MigrateOnStart,
		},
	}

	if p := jsonCfg.Proxy; p != nil {
		// An explicit empty chain cannot survive the merge, so it is
		// rejected here rather than silently dropped.
		if p.ProxyChain != nil && len(p.ProxyChain) == 0 {
			return nil, fmt.Errorf("%w: proxy chain is present but empty", ErrInvalidProxyConfigs)
		}
		cfg.Proxy = Proxy{
			UseProxy: p.UseProxy,
			Host:     p.ProxyHost,
			Port:     p.ProxyPort,
			Username: p.ProxyUsername,
			Password: p.ProxyPassword,
			Chain:    p.ProxyChain,
		}
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
