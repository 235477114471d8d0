// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/mock"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/internal/vault"
	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var hostSecretColumns = []string{"id", "password", "private_key", "passphrase", "totp_secret"}

func sealedValue(t *testing.T, recordID, column, plaintext string) string {
	t.Helper()
	v, err := vault.EncryptField(plaintext, testMasterKey, recordID, column)
	require.NoError(t, err)
	return v
}

func TestMigrateFields_SealsLegacyOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminChannel(ctrl)
	svc := NewMigrationService(admin, vault.NewFieldCipher(testMasterKey), logger.Nop())
	alreadySealed := sealedValue(t, "h-2", "password", "x")

	admin.EXPECT().Select(gomock.Any(), store.CallerFieldMigrator, "hosts", hostSecretColumns, nil).Return([]store.Row{
		{"id": "h-1", "password": "legacy-pw", "private_key": "", "passphrase": nil, "totp_secret": "JBSWY3DP"},
		{"id": "h-2", "password": alreadySealed, "private_key": "", "passphrase": "", "totp_secret": ""},
	}, nil)
	admin.EXPECT().Update(gomock.Any(), store.CallerFieldMigrator, "hosts", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.Caller, _ string, set store.Row, where map[string]any) (int64, error) {
			assert.Len(t, set, 2)
			assert.Equal(t, map[string]any{"id": "h-1", "password": "legacy-pw", "totp_secret": "JBSWY3DP"}, where)

			pw, err := vault.DecryptField(set["password"].(string), testMasterKey, "h-1", "password")
			require.NoError(t, err)
			assert.Equal(t, "legacy-pw", pw)
			assert.True(t, vault.IsEncrypted(set["totp_secret"].(string)))
			return 1, nil
		})

	report, err := svc.MigrateFields(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.MigrationReport{RowsScanned: 2, RowsUpdated: 1, FieldsSealed: 2, AlreadySealed: 1}, report)
}

func TestMigrateFields_SecondRunIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminChannel(ctrl)
	svc := NewMigrationService(admin, vault.NewFieldCipher(testMasterKey), logger.Nop())

	admin.EXPECT().Select(gomock.Any(), store.CallerFieldMigrator, "hosts", gomock.Any(), nil).Return([]store.Row{
		{"id": "h-1", "password": sealedValue(t, "h-1", "password", "pw")},
	}, nil)

	report, err := svc.MigrateFields(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.RowsUpdated)
	assert.Equal(t, 1, report.AlreadySealed)
}

func TestMigrateFields_ConcurrentChangeIsCountedAsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminChannel(ctrl)
	svc := NewMigrationService(admin, vault.NewFieldCipher(testMasterKey), logger.Nop())

	admin.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]store.Row{{"id": "h-1", "password": "legacy"}}, nil)
	admin.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	report, err := svc.MigrateFields(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Conflicts)
	assert.Equal(t, 0, report.RowsUpdated)
}

func TestMigrateFields_SelectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminChannel(ctrl)
	svc := NewMigrationService(admin, mock.NewMockHostCipher(ctrl), logger.Nop())

	admin.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrBypassNotPermitted)

	_, err := svc.MigrateFields(context.Background())
	assert.ErrorIs(t, err, store.ErrBypassNotPermitted)
}

func TestMigrateFields_CipherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mock.NewMockAdminChannel(ctrl)
	cipher := mock.NewMockHostCipher(ctrl)
	svc := NewMigrationService(admin, cipher, logger.Nop())

	admin.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]store.Row{{"id": "h-1", "password": "legacy"}}, nil)
	cipher.EXPECT().Encrypt("hosts", "h-1", "password", "legacy").Return("", errors.New("no key"))

	_, err := svc.MigrateFields(context.Background())
	assert.ErrorContains(t, err, "no key")
}
