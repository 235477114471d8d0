// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrEmptyHostname       = errors.New("hostname is required")
	ErrInvalidProtocol     = errors.New("unsupported protocol")
	ErrInvalidPort         = errors.New("port out of range")
	ErrInvalidProxyPort    = errors.New("proxy port out of range")
	ErrEmptyProxyNodeHost  = errors.New("proxy chain node host is required")
	ErrInvalidProxyNode    = errors.New("proxy chain node port out of range")
	ErrInvalidProxyVersion = errors.New("proxy chain node protocol version must be 5")
)
