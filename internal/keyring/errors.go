// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyring

import "errors"

var (
	// ErrKeyMaterialDegraded is returned by strict key rings when neither a
	// configured key nor a derivation secret is available.
	ErrKeyMaterialDegraded = errors.New("key material degraded")
	// ErrInvalidKey marks a configured key of the wrong shape.
	ErrInvalidKey = errors.New("configured key must be 64 hex characters or 32 raw bytes")
)
