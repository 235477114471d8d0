// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-vault-broker/internal/keyring"
	"github.com/MKhiriev/go-vault-broker/internal/mock"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMetricsService_CountsWithoutDecrypting(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminChannel(ctrl)
	vaultRing := mock.NewMockKeyTierReporter(ctrl)
	gatewayRing := mock.NewMockKeyTierReporter(ctrl)
	svc := NewMetricsService(admin, map[string]KeyTierReporter{"vault": vaultRing, "gateway": gatewayRing})

	admin.EXPECT().Select(gomock.Any(), store.CallerMetricsAggregator, "hosts",
		[]string{"password", "private_key", "passphrase", "totp_secret"}, nil).
		Return([]store.Row{
			{"password": sealedValue(t, "h-1", "password", "a"), "private_key": "legacy-key", "passphrase": "", "totp_secret": nil},
			{"password": "legacy", "private_key": "", "passphrase": "", "totp_secret": ""},
			{"password": `{"data":"","iv":"00","tag":"00","salt":"00"}`, "private_key": "", "passphrase": "", "totp_secret": ""},
		}, nil)
	vaultRing.EXPECT().Tier().Return(keyring.TierConfigured)
	gatewayRing.EXPECT().Tier().Return(keyring.TierRandom)

	metrics, err := svc.Collect(context.Background())
	require.NoError(t, err)

	hosts := metrics.Tables["hosts"]
	assert.Equal(t, 3, hosts.Records)
	assert.Equal(t, models.FieldStats{Encrypted: 1, Legacy: 2}, hosts.Fields["password"])
	assert.Equal(t, models.FieldStats{Legacy: 1, Empty: 2}, hosts.Fields["private_key"])
	assert.Equal(t, models.FieldStats{Empty: 3}, hosts.Fields["totp_secret"])
	assert.Equal(t, map[string]string{"vault": "configured", "gateway": "random"}, metrics.KeyTiers)
}

func TestMetricsService_PropagatesChannelErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminChannel(ctrl)
	svc := NewMetricsService(admin, nil)

	admin.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrBackendUnreachable)

	_, err := svc.Collect(context.Background())
	assert.ErrorIs(t, err, store.ErrBackendUnreachable)
}
