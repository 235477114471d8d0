// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "slices"

// EncryptedFields lists, per table, the columns that hold encryptable values.
// The migration job, the metrics aggregator and the admin channel all read
// this registry; a column missing here is stored in clear.
var EncryptedFields = map[string][]string{
	"hosts": {"password", "private_key", "passphrase", "totp_secret"},
}

// IsEncryptedField reports whether table.column is registered.
func IsEncryptedField(table, column string) bool {
	return slices.Contains(EncryptedFields[table], column)
}

// Tables returns the registered table names in sorted order.
func Tables() []string {
	tables := make([]string, 0, len(EncryptedFields))
	for t := range EncryptedFields {
		tables = append(tables, t)
	}
	slices.Sort(tables)
	return tables
}
