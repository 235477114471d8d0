// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net"

	"github.com/MKhiriev/go-vault-broker/internal/keyring"
	"github.com/MKhiriev/go-vault-broker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers console users and drives their vault unlock state.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	// Login verifies the master password, unlocks the user's vault and
	// returns a bearer token.
	Login(ctx context.Context, user models.User) (models.Token, error)
	// Logout locks the user's vault.
	Logout(ctx context.Context, userID string)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HostService manages host profiles. Secret fields are sealed on write and
// never returned by the profile methods; only RevealCredentials decrypts.
type HostService interface {
	CreateHost(ctx context.Context, userID string, host models.Host) (models.Host, error)
	GetHost(ctx context.Context, userID, hostID string) (models.Host, error)
	ListHosts(ctx context.Context, userID string) ([]models.Host, error)
	UpdateHost(ctx context.Context, userID string, host models.Host) (models.Host, error)
	DeleteHost(ctx context.Context, userID, hostID string) error
	RevealCredentials(ctx context.Context, userID, hostID string) (models.Credentials, error)
}

// BrokerService opens outbound paths to stored hosts.
type BrokerService interface {
	// Dial connects to the host directly or through its proxy settings.
	Dial(ctx context.Context, userID, hostID string) (net.Conn, error)
	// TestConnection dials the host and closes the connection at once.
	TestConnection(ctx context.Context, userID, hostID string) (models.ConnectionReport, error)
	// GatewayToken issues a gateway capability token for an RDP, VNC or
	// Telnet host. options override every other setting.
	GatewayToken(ctx context.Context, userID, hostID string, options map[string]any) (models.GatewayToken, error)
}

// MigrationService seals legacy plaintext fields of every user.
type MigrationService interface {
	MigrateFields(ctx context.Context) (models.MigrationReport, error)
}

// MetricsService reports how much stored data is sealed.
type MetricsService interface {
	Collect(ctx context.Context) (models.VaultMetrics, error)
}

// SessionGate is the unlock state the services consult before any
// decryption. *session.Gate satisfies it.
type SessionGate interface {
	Unlock(userID string)
	Lock(userID string)
	LockAll(reason string)
	Require(userID string) error
}

// HostCipher seals and opens encryptable fields. *vault.FieldCipher
// satisfies it.
type HostCipher interface {
	Encrypt(table, recordID, column, value string) (string, error)
	EncryptHost(h models.Host) (models.Host, error)
	DecryptHost(h models.Host) (models.Host, error)
}

// ProxyConnector opens proxied connections. *proxy.Connector satisfies it.
type ProxyConnector interface {
	Connect(ctx context.Context, host string, port int, cfg models.ProxyConfig) (net.Conn, error)
}

// TokenIssuer creates gateway tokens. *gateway.TokenService satisfies it.
type TokenIssuer interface {
	CreateToken(connType, hostname string, credentials, options map[string]any) (string, error)
}

// IDGenerator issues record ids. *utils.UUIDGenerator satisfies it.
type IDGenerator interface {
	Generate() string
}

// KeyTierReporter reports which tier produced a key. *keyring.KeyRing
// satisfies it.
type KeyTierReporter interface {
	Tier() keyring.Tier
}
