// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/internal/vault"
	"github.com/MKhiriev/go-vault-broker/models"
)

type migrationService struct {
	admin  store.AdminChannel
	cipher HostCipher
	logger *logger.Logger
}

// NewMigrationService constructs a MigrationService working through the
// admin channel as [store.CallerFieldMigrator].
func NewMigrationService(admin store.AdminChannel, cipher HostCipher, log *logger.Logger) MigrationService {
	return &migrationService{admin: admin, cipher: cipher, logger: log}
}

// MigrateFields seals every legacy plaintext value of every registered
// column. Sealed and empty values are left alone, so repeated runs are
// no-ops. A row is only rewritten if its plaintext columns still hold the
// values that were read.
func (m *migrationService) MigrateFields(ctx context.Context) (models.MigrationReport, error) {
	var report models.MigrationReport

	for _, table := range vault.Tables() {
		columns := append([]string{"id"}, vault.EncryptedFields[table]...)
		rows, err := m.admin.Select(ctx, store.CallerFieldMigrator, table, columns, nil)
		if err != nil {
			return report, fmt.Errorf("reading %s: %w", table, err)
		}

		for _, row := range rows {
			report.RowsScanned++
			id := fmt.Sprint(row["id"])

			set := store.Row{}
			where := map[string]any{"id": id}
			for _, column := range vault.EncryptedFields[table] {
				value, _ := row[column].(string)
				if value == "" {
					continue
				}
				if vault.IsEncrypted(value) {
					report.AlreadySealed++
					continue
				}
				sealed, err := m.cipher.Encrypt(table, id, column, value)
				if err != nil {
					return report, fmt.Errorf("sealing %s.%s of %s: %w", table, column, id, err)
				}
				set[column] = sealed
				where[column] = value
			}
			if len(set) == 0 {
				continue
			}

			n, err := m.admin.Update(ctx, store.CallerFieldMigrator, table, set, where)
			if err != nil {
				return report, fmt.Errorf("writing %s %s: %w", table, id, err)
			}
			if n == 0 {
				report.Conflicts++
				continue
			}
			report.RowsUpdated++
			report.FieldsSealed += len(set)
		}
	}

	m.logger.Info().
		Int("rows_scanned", report.RowsScanned).
		Int("rows_updated", report.RowsUpdated).
		Int("fields_sealed", report.FieldsSealed).
		Int("conflicts", report.Conflicts).
		Msg("legacy field migration finished")

	return report, nil
}
