// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/models"
)

// lockOnUnreachable locks every vault when err says the backend is gone and
// returns err unchanged.
func lockOnUnreachable(gate SessionGate, err error) error {
	if err != nil && store.IsUnreachable(err) {
		gate.LockAll("storage backend unreachable")
	}
	return err
}

// redact strips every encryptable field from h.
func redact(h models.Host) models.Host {
	h.Password = ""
	h.PrivateKey = ""
	h.Passphrase = ""
	h.TOTPSecret = ""
	return h
}
