// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements per-field encryption of stored credentials.
//
// Every encryptable field is sealed under its own key. The key is derived
// with HKDF-SHA256 from the master key, a fresh 32-byte salt and the field
// context "{recordID}:{fieldName}", so a ciphertext copied into another row
// or another column fails authentication. Sealed values are stored as a JSON
// envelope of lower-case hex strings:
//
//	{"data":"…","iv":"…","tag":"…","salt":"…"}
//
// Values that do not parse as an envelope are legacy plaintext. They are
// returned unchanged by [DecryptField] and sealed by [EncryptField], which
// lets the field migration job run any number of times.
package vault
