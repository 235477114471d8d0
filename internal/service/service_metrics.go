// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/internal/vault"
	"github.com/MKhiriev/go-vault-broker/models"
)

type metricsService struct {
	admin    store.AdminChannel
	keyRings map[string]KeyTierReporter
}

// NewMetricsService constructs a MetricsService reading through the admin
// channel as [store.CallerMetricsAggregator]. keyRings are reported by
// name with their resolved tier.
func NewMetricsService(admin store.AdminChannel, keyRings map[string]KeyTierReporter) MetricsService {
	return &metricsService{admin: admin, keyRings: keyRings}
}

func (m *metricsService) Collect(ctx context.Context) (models.VaultMetrics, error) {
	metrics := models.VaultMetrics{Tables: make(map[string]models.TableStats)}

	for _, table := range vault.Tables() {
		fields := vault.EncryptedFields[table]
		rows, err := m.admin.Select(ctx, store.CallerMetricsAggregator, table, fields, nil)
		if err != nil {
			return models.VaultMetrics{}, fmt.Errorf("reading %s: %w", table, err)
		}

		stats := models.TableStats{Records: len(rows), Fields: make(map[string]models.FieldStats, len(fields))}
		for _, column := range fields {
			var fs models.FieldStats
			for _, row := range rows {
				value, _ := row[column].(string)
				switch {
				case value == "":
					fs.Empty++
				case vault.IsEncrypted(value):
					fs.Encrypted++
				default:
					fs.Legacy++
				}
			}
			stats.Fields[column] = fs
		}
		metrics.Tables[table] = stats
	}

	if len(m.keyRings) > 0 {
		metrics.KeyTiers = make(map[string]string, len(m.keyRings))
		for name, ring := range m.keyRings {
			metrics.KeyTiers[name] = ring.Tier().String()
		}
	}

	return metrics, nil
}
