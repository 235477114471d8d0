// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vault-broker/internal/config"
	"github.com/MKhiriev/go-vault-broker/internal/connlog"
	"github.com/MKhiriev/go-vault-broker/internal/crypto"
	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/store"
)

// Dependencies are the collaborators shared by the services. They are
// built once in main.
type Dependencies struct {
	Gate      SessionGate
	Cipher    HostCipher
	Connector ProxyConnector
	Tokens    TokenIssuer
	Hasher    crypto.PasswordHasher
	IDs       IDGenerator
	ConnLog   connlog.Logger
	KeyRings  map[string]KeyTierReporter
}

type Services struct {
	AuthService      AuthService
	HostService      HostService
	BrokerService    BrokerService
	MigrationService MigrationService
	MetricsService   MetricsService
}

func NewServices(repos *store.Repositories, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(repos.UserRepository, deps.Hasher, deps.Gate, cfg.App, logger),
		HostService:      NewHostService(repos.HostRepository, deps.Cipher, deps.Gate, deps.IDs, logger),
		BrokerService:    NewBrokerService(repos.HostRepository, deps.Cipher, deps.Gate, deps.Connector, deps.Tokens, deps.ConnLog, cfg, logger),
		MigrationService: NewMigrationService(repos.AdminChannel, deps.Cipher, logger),
		MetricsService:   NewMetricsService(repos.AdminChannel, deps.KeyRings),
	}
}
