// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginResponse is returned by a successful login. The same token is also
// sent in the Authorization response header.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GatewayTokenRequest carries per-session settings for a gateway token.
// Options override every stored and derived setting.
type GatewayTokenRequest struct {
	Options map[string]any `json:"options,omitempty"`
}
