// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the transport servers in this package.
type Server interface {
	// Run serves requests until ctx is cancelled, then drains in-flight
	// requests. It returns nil after a clean shutdown.
	Run(ctx context.Context) error
}
