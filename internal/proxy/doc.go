// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package proxy opens outbound TCP paths to target hosts through SOCKS5.
//
// A [Connector] supports a single proxy and chains of any length. In a chain
// only the first node is dialed directly; every later negotiation runs inside
// the tunnel built so far, so node N sees traffic from node N-1 only. Hops
// are strictly sequential and each one has its own timeout.
//
// The connector never retries and never falls back to a direct connection
// when a configured proxy fails.
package proxy
