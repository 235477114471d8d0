// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/stretchr/testify/assert"
)

func validHost() models.Host {
	return models.Host{Name: "db", Hostname: "10.0.0.5", Protocol: models.ProtocolSSH, Port: 22}
}

func TestHostValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(h *models.Host)
		wantErr error
	}{
		{"valid", func(h *models.Host) {}, nil},
		{"no name", func(h *models.Host) { h.Name = "" }, ErrEmptyName},
		{"no hostname", func(h *models.Host) { h.Hostname = "" }, ErrEmptyHostname},
		{"bad protocol", func(h *models.Host) { h.Protocol = "ftp" }, ErrInvalidProtocol},
		{"port zero", func(h *models.Host) { h.Port = 0 }, ErrInvalidPort},
		{"port too big", func(h *models.Host) { h.Port = 70000 }, ErrInvalidPort},
		{"proxy port", func(h *models.Host) { h.Proxy = models.ProxyConfig{UseProxy: true, ProxyHost: "p", ProxyPort: -1} }, ErrInvalidProxyPort},
		{"node without host", func(h *models.Host) {
			h.Proxy = models.ProxyConfig{ProxyChain: []models.ProxyNode{{Port: 1080}}}
		}, ErrEmptyProxyNodeHost},
		{"node bad port", func(h *models.Host) {
			h.Proxy = models.ProxyConfig{ProxyChain: []models.ProxyNode{{Host: "a", Port: 0}}}
		}, ErrInvalidProxyNode},
		{"node socks4", func(h *models.Host) {
			h.Proxy = models.ProxyConfig{ProxyChain: []models.ProxyNode{{Host: "a", Port: 1080, ProtocolVersion: 4}}}
		}, ErrInvalidProxyVersion},
		{"empty chain is left to the connector", func(h *models.Host) {
			h.Proxy = models.ProxyConfig{ProxyChain: []models.ProxyNode{}}
		}, nil},
	}

	v := NewHostValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHost()
			tt.mutate(&h)

			err := v.Validate(context.Background(), &h)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHostValidator_ScopedFields(t *testing.T) {
	v := NewHostValidator()
	h := models.Host{Name: "db"}

	assert.NoError(t, v.Validate(context.Background(), h, FieldName))

	err := v.Validate(context.Background(), h)
	assert.ErrorIs(t, err, ErrEmptyHostname)
	assert.ErrorIs(t, err, ErrInvalidProtocol)
	assert.ErrorIs(t, err, ErrInvalidPort)

	assert.ErrorIs(t, v.Validate(context.Background(), h, "color"), ErrUnknownField)
}

func TestHostValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewHostValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
