// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"fmt"
	"net"
	"time"
)

// ProbeTimeout bounds a reachability probe when the caller gives none.
const ProbeTimeout = 3 * time.Second

// Probe checks that address accepts TCP connections within timeout. The
// connection is closed immediately. A non-positive timeout means
// [ProbeTimeout].
func Probe(ctx context.Context, address string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = ProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrGatewayUnreachable, address, err)
	}
	return conn.Close()
}
