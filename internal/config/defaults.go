// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the lowest-precedence configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-vault-broker",
			TokenDuration: 12 * time.Hour,
			LogLevel:      "info",
		},
		Vault: Vault{
			IdleTimeout: 30 * time.Minute,
		},
		Gateway: Gateway{
			ProbeTimeout: 3 * time.Second,
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SweepInterval:       time.Minute,
			HealthCheckInterval: 15 * time.Second,
			MetricsInterval:     10 * time.Minute,
		},
	}
}
