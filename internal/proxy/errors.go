// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyChain is returned for an explicit chain with no nodes.
	ErrEmptyChain = errors.New("proxy chain is empty")
	// ErrMissingProxyTarget is returned when the target or a node lacks a
	// usable host or port.
	ErrMissingProxyTarget = errors.New("proxy target is missing")
	// ErrUnsupportedProxyVersion is returned for nodes that are not SOCKS5.
	ErrUnsupportedProxyVersion = errors.New("unsupported proxy protocol version")
	// ErrChainConnect is wrapped by every [ConnectError].
	ErrChainConnect = errors.New("proxy chain connect failed")
)

// ConnectError reports the hop at which a proxied connection failed.
//
// Hop is the 0-based index of the node involved, Hops the number of nodes.
// For the initial direct dial Target equals Proxy.
type ConnectError struct {
	Hop    int
	Hops   int
	Proxy  string
	Target string
	Err    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("%s: hop %d/%d via %s to %s: %v",
		ErrChainConnect, e.Hop+1, e.Hops, e.Proxy, e.Target, e.Err)
}

func (e *ConnectError) Unwrap() []error {
	return []error{ErrChainConnect, e.Err}
}
