// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"context"
	"errors"
	"net"
)

var errTunnelUsed = errors.New("tunnel already handed out")

// tunnelDialer hands out an established tunnel exactly once, whatever address
// is asked for. It is the transport of a SOCKS5 negotiation that must run
// inside the previous hop instead of over a fresh socket.
type tunnelDialer struct {
	conn net.Conn
}

func (d *tunnelDialer) Dial(network, address string) (net.Conn, error) {
	return d.DialContext(context.Background(), network, address)
}

func (d *tunnelDialer) DialContext(_ context.Context, _, _ string) (net.Conn, error) {
	if d.conn == nil {
		return nil, errTunnelUsed
	}
	conn := d.conn
	d.conn = nil
	return conn, nil
}

// contextDialer adapts a dial func to [golang.org/x/net/proxy.ContextDialer].
type contextDialer dialFunc

func (f contextDialer) Dial(network, address string) (net.Conn, error) {
	return f(context.Background(), network, address)
}

func (f contextDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	return f(ctx, network, address)
}
