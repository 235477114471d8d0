// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostRow(h models.Host, proxy any) []driver.Value {
	return []driver.Value{h.ID, h.UserID, h.Name, string(h.Protocol), h.Hostname, h.Port, h.Username,
		h.Password, h.PrivateKey, h.Passphrase, h.TOTPSecret, proxy, h.CreatedAt, h.UpdatedAt}
}

func sampleStoredHost() models.Host {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Host{
		ID: "h-1", UserID: "u-1", Name: "db", Protocol: models.ProtocolSSH,
		Hostname: "10.0.0.5", Port: 22, Username: "bob",
		Password:  `{"data":"aa","iv":"bb","tag":"cc","salt":"dd"}`,
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestCreateHost(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewHostRepository(db, logger.Nop())
	h := sampleStoredHost()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO hosts (id,user_id,name,protocol,hostname,port,username,password,private_key,passphrase,totp_secret,proxy,created_at,updated_at)")).
		WithArgs(h.ID, h.UserID, h.Name, "ssh", h.Hostname, h.Port, h.Username,
			h.Password, "", "", "", nil, h.CreatedAt, h.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateHost(context.Background(), h))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHost_ScansProxy(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewHostRepository(db, logger.Nop())
	h := sampleStoredHost()
	proxyJSON := `{"useProxy":true,"proxyChain":[{"host":"a","port":1080}]}`

	mock.ExpectQuery(regexp.QuoteMeta("FROM hosts WHERE id = $1 AND user_id = $2")).
		WithArgs("h-1", "u-1").
		WillReturnRows(sqlmock.NewRows(hostColumns).AddRow(hostRow(h, proxyJSON)...))

	got, err := repo.GetHost(context.Background(), "u-1", "h-1")
	require.NoError(t, err)
	assert.Equal(t, h.Password, got.Password)
	assert.Equal(t, models.ProtocolSSH, got.Protocol)
	assert.True(t, got.Proxy.UseProxy)
	require.Len(t, got.Proxy.ProxyChain, 1)
	assert.Equal(t, "a", got.Proxy.ProxyChain[0].Host)
}

func TestGetHost_NotFound(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewHostRepository(db, logger.Nop())

	mock.ExpectQuery("FROM hosts").WillReturnRows(sqlmock.NewRows(hostColumns))

	_, err := repo.GetHost(context.Background(), "u-1", "missing")
	assert.ErrorIs(t, err, ErrHostNotFound)
}

func TestListHosts(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewHostRepository(db, logger.Nop())
	a := sampleStoredHost()
	b := sampleStoredHost()
	b.ID, b.Name = "h-2", "web"

	mock.ExpectQuery(regexp.QuoteMeta("FROM hosts WHERE user_id = $1 ORDER BY name, id")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(hostColumns).AddRow(hostRow(a, nil)...).AddRow(hostRow(b, nil)...))

	hosts, err := repo.ListHosts(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, hosts, 2)
	assert.Equal(t, "h-2", hosts[1].ID)
	assert.True(t, hosts[0].Proxy.IsZero())
}

func TestUpdateHost_NotFound(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewHostRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE hosts SET")).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateHost(context.Background(), sampleStoredHost())
	assert.ErrorIs(t, err, ErrHostNotFound)
}

func TestUpdateHost_Success(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewHostRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE hosts SET")).WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateHost(context.Background(), sampleStoredHost()))
}

func TestDeleteHost(t *testing.T) {
	db, mock := newMockDB(t, DialectSQLite)
	repo := NewHostRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM hosts WHERE id = ? AND user_id = ?")).
		WithArgs("h-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM hosts").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteHost(context.Background(), "u-1", "h-1"))
	assert.ErrorIs(t, repo.DeleteHost(context.Background(), "u-1", "h-1"), ErrHostNotFound)
}
