// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import "errors"

var (
	// ErrEmptyConnectionType is returned when a token is requested without
	// a connection type.
	ErrEmptyConnectionType = errors.New("connection type is empty")
	// ErrGatewayUnreachable is returned by [Probe] when the gateway does
	// not accept TCP connections.
	ErrGatewayUnreachable = errors.New("gateway unreachable")

	errBadPadding = errors.New("invalid padding")
)
