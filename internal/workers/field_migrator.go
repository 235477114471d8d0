// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/service"
)

// FieldMigrator runs the legacy field migration once and exits. A failed
// run is logged and left for the next start; it does not stop the server.
type FieldMigrator struct {
	migration service.MigrationService
	logger    *logger.Logger
}

func NewFieldMigrator(migration service.MigrationService, logger *logger.Logger) *FieldMigrator {
	return &FieldMigrator{migration: migration, logger: logger}
}

func (f *FieldMigrator) Name() string { return "field_migrator" }

func (f *FieldMigrator) Run(ctx context.Context) error {
	report, err := f.migration.MigrateFields(ctx)
	if err != nil {
		f.logger.Err(err).Any("report", report).Msg("legacy field migration failed")
		return nil
	}

	f.logger.Info().Any("report", report).Msg("legacy field migration finished")
	return nil
}
