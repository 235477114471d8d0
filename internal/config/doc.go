// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the broker.
//
// Configuration is assembled from multiple sources. Precedence, lowest to
// highest:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags
//
// Three secrets feed the key rings: VAULT_MASTER_KEY, GATEWAY_KEY and the
// fallback APP_SECRET. The main entry point is [GetStructuredConfig].
package config
