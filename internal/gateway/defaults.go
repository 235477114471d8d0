// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

// Connection types understood by the gateway.
const (
	TypeRDP    = "rdp"
	TypeVNC    = "vnc"
	TypeTelnet = "telnet"
)

// defaultSettings returns a fresh copy of the per-type defaults. Unknown
// types have none.
func defaultSettings(connType string) map[string]any {
	switch connType {
	case TypeRDP:
		return map[string]any{
			"port":        3389,
			"security":    "nla",
			"ignore-cert": true,
		}
	case TypeVNC:
		return map[string]any{"port": 5900}
	case TypeTelnet:
		return map[string]any{"port": 23}
	default:
		return map[string]any{}
	}
}
