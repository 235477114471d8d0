// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-broker/models"
)

// KeyProvider supplies the master key. *keyring.KeyRing satisfies it.
type KeyProvider interface {
	Key() ([]byte, error)
}

// FieldCipher binds the field functions to a master key source and applies
// them to whole records.
type FieldCipher struct {
	keys KeyProvider
}

// NewFieldCipher returns a FieldCipher reading its key from keys.
func NewFieldCipher(keys KeyProvider) *FieldCipher {
	return &FieldCipher{keys: keys}
}

// Encrypt seals one registered field of table.
func (c *FieldCipher) Encrypt(table, recordID, column, value string) (string, error) {
	if !IsEncryptedField(table, column) {
		return "", fmt.Errorf("%s.%s: %w", table, column, ErrUnknownField)
	}
	key, err := c.keys.Key()
	if err != nil {
		return "", err
	}
	return EncryptField(value, key, recordID, column)
}

// Decrypt opens one registered field of table.
func (c *FieldCipher) Decrypt(table, recordID, column, value string) (string, error) {
	if !IsEncryptedField(table, column) {
		return "", fmt.Errorf("%s.%s: %w", table, column, ErrUnknownField)
	}
	key, err := c.keys.Key()
	if err != nil {
		return "", err
	}
	return DecryptField(value, key, recordID, column)
}

// EncryptHost returns h with every encryptable field sealed under h.ID.
// h.ID must be final: the envelopes are bound to it.
func (c *FieldCipher) EncryptHost(h models.Host) (models.Host, error) {
	key, err := c.keys.Key()
	if err != nil {
		return models.Host{}, err
	}

	for column, field := range hostFields(&h) {
		sealed, err := EncryptField(*field, key, h.ID, column)
		if err != nil {
			return models.Host{}, fmt.Errorf("encrypting %s: %w", column, err)
		}
		*field = sealed
	}
	return h, nil
}

// DecryptHost returns h with every encryptable field opened. All fields are
// attempted; the returned error joins every field failure and the returned
// host is zero when any field failed, so no partial plaintext escapes.
func (c *FieldCipher) DecryptHost(h models.Host) (models.Host, error) {
	key, err := c.keys.Key()
	if err != nil {
		return models.Host{}, err
	}

	var errs []error
	for column, field := range hostFields(&h) {
		opened, err := DecryptField(*field, key, h.ID, column)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*field = opened
	}
	if len(errs) > 0 {
		return models.Host{}, errors.Join(errs...)
	}
	return h, nil
}

// hostFields maps registered host columns to the struct fields holding them.
func hostFields(h *models.Host) map[string]*string {
	return map[string]*string{
		"password":    &h.Password,
		"private_key": &h.PrivateKey,
		"passphrase":  &h.Passphrase,
		"totp_secret": &h.TOTPSecret,
	}
}
