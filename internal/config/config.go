// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-vault-broker/models"
)

// StructuredConfig is the top-level configuration container for the broker.
// It is populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-wide secrets, bearer-token parameters and the
	// key-material posture.
	App App `envPrefix:"APP_"`

	// Vault holds field-encryption key material and session idle settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Gateway holds the protocol gateway token key and endpoint.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Proxy holds the global outbound proxy settings.
	Proxy Proxy `envPrefix:"PROXY_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds intervals of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Secret is the general long-lived application secret. Vault and gateway
	// keys are derived from it when no dedicated key is configured.
	// Env: APP_SECRET
	Secret string `env:"SECRET"`

	// TokenSignKey signs and verifies bearer JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued JWT stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RequireStableKeys refuses random fallback key material. Set it in
	// production so a missing secret fails startup instead of orphaning data.
	// Env: APP_REQUIRE_STABLE_KEYS
	RequireStableKeys bool `env:"REQUIRE_STABLE_KEYS"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Vault holds field-encryption settings.
type Vault struct {
	// MasterKey is the dedicated 32-byte vault key, as 64 hex characters or
	// 32 raw bytes.
	// Env: VAULT_MASTER_KEY
	MasterKey string `env:"MASTER_KEY"`

	// IdleTimeout locks a user's vault after this long without activity.
	// Env: VAULT_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// Gateway holds protocol gateway settings.
type Gateway struct {
	// Key is the dedicated 32-byte token key, hex or raw.
	// Env: GATEWAY_KEY
	Key string `env:"KEY"`

	// Address is the gateway's host:port, used for reachability probes.
	// Env: GATEWAY_ADDRESS
	Address string `env:"ADDRESS"`

	// ProbeTimeout bounds a single reachability probe.
	// Env: GATEWAY_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Proxy holds the global outbound proxy settings. A chain can only be
// supplied through the JSON file.
type Proxy struct {
	// Env: PROXY_ENABLED
	UseProxy bool `env:"ENABLED"`
	// Env: PROXY_HOST
	Host string `env:"HOST"`
	// Env: PROXY_PORT
	Port int `env:"PORT"`
	// Env: PROXY_USERNAME
	Username string `env:"USERNAME"`
	// Env: PROXY_PASSWORD
	Password string `env:"PASSWORD"`

	Chain []models.ProxyNode
}

// ProxyConfig converts the section into the connector's config surface.
func (p Proxy) ProxyConfig() models.ProxyConfig {
	return models.ProxyConfig{
		UseProxy:      p.UseProxy,
		ProxyHost:     p.Host,
		ProxyPort:     p.Port,
		ProxyUsername: p.Username,
		ProxyPassword: p.Password,
		ProxyChain:    p.Chain,
	}
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://..." or "postgresql://..." opens
	// PostgreSQL through pgx, anything else is a SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker intervals.
type Workers struct {
	// SweepInterval is how often expired unlock states are swept.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// HealthCheckInterval is how often the database is pinged.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`

	// MetricsInterval is how often vault metrics are logged. Zero disables
	// the reporter.
	// Env: WORKERS_METRICS_INTERVAL
	MetricsInterval time.Duration `env:"METRICS_INTERVAL"`

	// MigrateOnStart seals legacy plaintext fields once at startup.
	// Env: WORKERS_MIGRATE_ON_START
	MigrateOnStart bool `env:"MIGRATE_ON_START"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Precedence, lowest to highest: defaults, JSON file,
// environment variables, command-line flags.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
