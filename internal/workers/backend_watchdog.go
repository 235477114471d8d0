// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
)

const backendDownReason = "storage backend unreachable"

// BackendWatchdog pings storage and locks every vault when it stops
// answering. Vaults are locked once per outage; users log in again after
// the backend is back.
type BackendWatchdog struct {
	checker  HealthChecker
	locker   Locker
	interval time.Duration
	logger   *logger.Logger

	down bool
}

func NewBackendWatchdog(checker HealthChecker, locker Locker, interval time.Duration, logger *logger.Logger) *BackendWatchdog {
	return &BackendWatchdog{checker: checker, locker: locker, interval: interval, logger: logger}
}

func (b *BackendWatchdog) Name() string { return "backend_watchdog" }

func (b *BackendWatchdog) Run(ctx context.Context) error {
	return every(ctx, b.interval, b.check)
}

func (b *BackendWatchdog) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	err := b.checker.Check(pingCtx)
	switch {
	case err != nil && ctx.Err() != nil:
		// shutting down
	case err != nil && !b.down:
		b.down = true
		b.logger.Audit("backend_down").Err(err).Msg("storage unreachable, locking all vaults")
		b.locker.LockAll(backendDownReason)
	case err == nil && b.down:
		b.down = false
		b.logger.Info().Msg("storage reachable again")
	}
}
