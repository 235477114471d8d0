// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldStats counts the storage state of one encryptable column.
type FieldStats struct {
	Encrypted int `json:"encrypted"`
	Legacy    int `json:"legacy"`
	Empty     int `json:"empty"`
}

// TableStats counts the storage state of every encryptable column of a
// table.
type TableStats struct {
	Records int                   `json:"records"`
	Fields  map[string]FieldStats `json:"fields"`
}

// VaultMetrics is a snapshot of how much stored data is sealed. It is
// computed without decrypting anything.
type VaultMetrics struct {
	Tables   map[string]TableStats `json:"tables"`
	KeyTiers map[string]string     `json:"key_tiers,omitempty"`
}

// MigrationReport summarises one run of the legacy field migration.
type MigrationReport struct {
	RowsScanned   int `json:"rows_scanned"`
	RowsUpdated   int `json:"rows_updated"`
	FieldsSealed  int `json:"fields_sealed"`
	AlreadySealed int `json:"already_sealed"`
	// Conflicts counts rows changed by someone else between read and write.
	// They are left for the next run.
	Conflicts int `json:"conflicts"`
}
