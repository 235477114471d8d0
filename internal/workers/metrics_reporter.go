// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/service"
)

// MetricsReporter logs a vault metrics snapshot on start and then on every
// interval.
type MetricsReporter struct {
	metrics  service.MetricsService
	interval time.Duration
	logger   *logger.Logger
}

func NewMetricsReporter(metrics service.MetricsService, interval time.Duration, logger *logger.Logger) *MetricsReporter {
	return &MetricsReporter{metrics: metrics, interval: interval, logger: logger}
}

func (m *MetricsReporter) Name() string { return "metrics_reporter" }

func (m *MetricsReporter) Run(ctx context.Context) error {
	m.report(ctx)
	return every(ctx, m.interval, m.report)
}

func (m *MetricsReporter) report(ctx context.Context) {
	metrics, err := m.metrics.Collect(ctx)
	if err != nil {
		m.logger.Err(err).Msg("collecting vault metrics failed")
		return
	}

	legacy := 0
	for _, table := range metrics.Tables {
		for _, field := range table.Fields {
			legacy += field.Legacy
		}
	}

	event := m.logger.Info()
	if legacy > 0 {
		event = m.logger.Warn()
	}
	event.Any("tables", metrics.Tables).
		Any("key_tiers", metrics.KeyTiers).
		Int("legacy_fields", legacy).
		Msg("vault metrics")
}
