// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the broker's background jobs: idle session sweeping,
// storage health watching, vault metrics reporting and the one-shot legacy
// field migration.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// is finished. A returned error stops every other worker.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// Sweeper drops expired unlock states. *session.Gate satisfies it.
type Sweeper interface {
	Sweep() int
}

// HealthChecker pings the storage backend. *store.DB satisfies it.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// Locker locks every unlocked vault. *session.Gate satisfies it.
type Locker interface {
	LockAll(reason string)
}
