// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-vault-broker/internal/logger"

// Repositories bundles every repository built on one [DB].
type Repositories struct {
	UserRepository UserRepository
	HostRepository HostRepository
	AdminChannel   AdminChannel
}

// NewRepositories constructs all repositories over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		HostRepository: NewHostRepository(db, log),
		AdminChannel:   NewAdminChannel(db, log),
	}
}
