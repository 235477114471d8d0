// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vault-broker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists console accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// HostRepository persists host profiles exactly as given. Encryptable
// fields are expected to be sealed already; the repository never looks at
// them.
type HostRepository interface {
	CreateHost(ctx context.Context, host models.Host) error
	GetHost(ctx context.Context, userID, hostID string) (models.Host, error)
	ListHosts(ctx context.Context, userID string) ([]models.Host, error)
	UpdateHost(ctx context.Context, host models.Host) error
	DeleteHost(ctx context.Context, userID, hostID string) error
}

// Row is one record read through the [AdminChannel], keyed by column name.
type Row map[string]any

// Caller names a component allowed to use the [AdminChannel].
type Caller string

const (
	CallerMetricsAggregator Caller = "metrics_aggregator"
	CallerFieldMigrator     Caller = "field_migrator"
)

// AdminChannel reads and writes encryptable tables across all users without
// a session check and without decrypting. Only enumerated callers may use
// it and every call is audited.
type AdminChannel interface {
	Select(ctx context.Context, caller Caller, table string, columns []string, where map[string]any) ([]Row, error)
	Insert(ctx context.Context, caller Caller, table string, values Row) (int64, error)
	Update(ctx context.Context, caller Caller, table string, set Row, where map[string]any) (int64, error)
	Delete(ctx context.Context, caller Caller, table string, where map[string]any) (int64, error)
}
