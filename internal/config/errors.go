// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing application-level settings
	// (for example, an empty token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidVaultConfigs indicates a non-positive idle timeout.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidProxyConfigs indicates out-of-range ports or an explicit
	// empty chain.
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
	// ErrInvalidWorkerConfigs indicates non-positive worker intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
