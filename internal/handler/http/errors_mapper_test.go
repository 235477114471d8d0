// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-vault-broker/internal/keyring"
	"github.com/MKhiriev/go-vault-broker/internal/proxy"
	"github.com/MKhiriev/go-vault-broker/internal/service"
	"github.com/MKhiriev/go-vault-broker/internal/session"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/internal/vault"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"session expired", session.ErrSessionExpired, http.StatusLocked},
		{"decryption", fmt.Errorf("reveal: %w", vault.ErrDecryptionFailed), http.StatusUnprocessableEntity},
		{"unreachable over scan error", errors.Join(store.ErrScanningRow, store.ErrBackendUnreachable), http.StatusServiceUnavailable},
		{"degraded keys", keyring.ErrKeyMaterialDegraded, http.StatusServiceUnavailable},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"not brokered", service.ErrProtocolNotBrokered, http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"conflict", store.ErrLoginAlreadyExists, http.StatusConflict},
		{"not found", store.ErrHostNotFound, http.StatusNotFound},
		{"empty chain", proxy.ErrEmptyChain, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
			assert.NotContains(t, message, "boom")
		})
	}
}

func TestResponseWriter_StatusDefaultsToOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: &discardWriter{header: http.Header{}}}
	assert.Equal(t, http.StatusOK, rw.Status())

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("abc"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusTeapot, rw.Status())
	assert.Equal(t, 3, rw.size)
}

type discardWriter struct {
	header http.Header
}

func (d *discardWriter) Header() http.Header         { return d.header }
func (d *discardWriter) Write(b []byte) (int, error) { return len(b), nil }
func (d *discardWriter) WriteHeader(int)             {}
