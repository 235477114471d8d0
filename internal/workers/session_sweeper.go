// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
)

// SessionSweeper periodically drops unlock states whose idle timeout has
// passed, so memory does not grow with users that never log out.
type SessionSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{sweeper: sweeper, interval: interval, logger: logger}
}

func (s *SessionSweeper) Name() string { return "session_sweeper" }

func (s *SessionSweeper) Run(ctx context.Context) error {
	return every(ctx, s.interval, func(context.Context) {
		if n := s.sweeper.Sweep(); n > 0 {
			s.logger.Info().Int("expired", n).Msg("idle sessions locked")
		}
	})
}
