// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Route names how the broker reached a target.
type Route string

const (
	RouteDirect     Route = "direct"
	RouteProxy      Route = "proxy"
	RouteProxyChain Route = "proxy_chain"
)

// ConnectionReport describes a completed test connection to a host.
type ConnectionReport struct {
	HostID  string        `json:"host_id"`
	Target  string        `json:"target"`
	Route   Route         `json:"route"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// GatewayToken is an issued capability token together with what the client
// needs to hand it to the gateway.
type GatewayToken struct {
	Token          string `json:"token"`
	ConnectionType string `json:"connection_type"`
	Gateway        string `json:"gateway,omitempty"`
}
