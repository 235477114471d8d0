// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Key material is intentionally not required here: the
// key rings decide between configured, derived and degraded keys.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Vault.IdleTimeout <= 0 {
		return ErrInvalidVaultConfigs
	}

	if err := cfg.Proxy.validate(); err != nil {
		return err
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.HealthCheckInterval <= 0 || cfg.Workers.MetricsInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (p Proxy) validate() error {
	if p.Port < 0 || p.Port > 65535 {
		return fmt.Errorf("%w: proxy port %d", ErrInvalidProxyConfigs, p.Port)
	}
	for i, node := range p.Chain {
		if node.Host == "" || node.Port < 1 || node.Port > 65535 {
			return fmt.Errorf("%w: chain node %d", ErrInvalidProxyConfigs, i)
		}
	}
	return nil
}
