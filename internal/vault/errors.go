// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"
)

var (
	// ErrDecryptionFailed is wrapped by every [FieldError].
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrInvalidMasterKey is returned when the master key is not 32 bytes.
	ErrInvalidMasterKey = errors.New("master key must be 32 bytes")
	// ErrUnknownField is returned for fields outside the registry.
	ErrUnknownField = errors.New("field is not registered as encryptable")
)

// FieldError describes a field that could not be decrypted. It carries the
// field context and a short reason, never key material or plaintext.
type FieldError struct {
	RecordID  string
	FieldName string
	Reason    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("decrypting %s of record %s: %s", e.FieldName, e.RecordID, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrDecryptionFailed
}
