// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/vault"
	sq "github.com/Masterminds/squirrel"
)

// adminChannel is the SQL implementation of [AdminChannel].
//
// It skips the session gate, so it is held to two rules instead: the caller
// must be enumerated in permittedCallers and the table must be in the
// encryptable-field registry. Every call, permitted or not, emits one
// admin_bypass audit event.
type adminChannel struct {
	db               *DB
	logger           *logger.Logger
	permittedCallers []Caller
}

// NewAdminChannel constructs an [AdminChannel] over db.
func NewAdminChannel(db *DB, log *logger.Logger) AdminChannel {
	return &adminChannel{
		db:               db,
		logger:           log,
		permittedCallers: []Caller{CallerMetricsAggregator, CallerFieldMigrator},
	}
}

// Select returns matching rows of table exactly as stored. A nil or empty
// columns slice selects every column.
func (a *adminChannel) Select(ctx context.Context, caller Caller, table string, columns []string, where map[string]any) (rows []Row, err error) {
	defer func() { a.audit(caller, table, "select", len(rows), err) }()

	if err = a.permit(caller, table); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	builder := a.db.builder.Select(columns...).From(table)
	if len(where) > 0 {
		builder = builder.Where(sq.Eq(where))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, a.db.wrap(ErrExecutingQuery, err)
	}
	defer result.Close()

	names, err := result.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for result.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err = result.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		row := make(Row, len(names))
		for i, name := range names {
			if b, ok := values[i].([]byte); ok {
				row[name] = string(b)
				continue
			}
			row[name] = values[i]
		}
		rows = append(rows, row)
	}
	if err = result.Err(); err != nil {
		return nil, a.db.wrap(ErrScanningRows, err)
	}

	return rows, nil
}

// Insert writes values into table verbatim.
func (a *adminChannel) Insert(ctx context.Context, caller Caller, table string, values Row) (n int64, err error) {
	defer func() { a.audit(caller, table, "insert", int(n), err) }()

	if err = a.permit(caller, table); err != nil {
		return 0, err
	}

	query, args, err := a.db.builder.Insert(table).SetMap(values).ToSql()
	if err != nil {
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	return a.exec(ctx, query, args)
}

// Update sets columns of matching rows verbatim. An empty where is refused
// so that a bug cannot rewrite a whole table.
func (a *adminChannel) Update(ctx context.Context, caller Caller, table string, set Row, where map[string]any) (n int64, err error) {
	defer func() { a.audit(caller, table, "update", int(n), err) }()

	if err = a.permit(caller, table); err != nil {
		return 0, err
	}
	if len(where) == 0 {
		return 0, fmt.Errorf("%w: update without condition", ErrBypassNotPermitted)
	}

	query, args, err := a.db.builder.Update(table).SetMap(set).Where(sq.Eq(where)).ToSql()
	if err != nil {
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	return a.exec(ctx, query, args)
}

// Delete removes matching rows. An empty where is refused.
func (a *adminChannel) Delete(ctx context.Context, caller Caller, table string, where map[string]any) (n int64, err error) {
	defer func() { a.audit(caller, table, "delete", int(n), err) }()

	if err = a.permit(caller, table); err != nil {
		return 0, err
	}
	if len(where) == 0 {
		return 0, fmt.Errorf("%w: delete without condition", ErrBypassNotPermitted)
	}

	query, args, err := a.db.builder.Delete(table).Where(sq.Eq(where)).ToSql()
	if err != nil {
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	return a.exec(ctx, query, args)
}

func (a *adminChannel) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, a.db.wrap(ErrExecutingStatement, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

func (a *adminChannel) permit(caller Caller, table string) error {
	if !slices.Contains(a.permittedCallers, caller) {
		return fmt.Errorf("%w: caller %q", ErrBypassNotPermitted, caller)
	}
	if _, ok := vault.EncryptedFields[table]; !ok {
		return fmt.Errorf("%w: table %q", ErrBypassNotPermitted, table)
	}
	return nil
}

func (a *adminChannel) audit(caller Caller, table, operation string, rows int, err error) {
	ev := a.logger.Audit("admin_bypass").
		Str("caller", string(caller)).
		Str("table", table).
		Str("operation", operation).
		Int("rows", rows)
	if err != nil {
		ev.Str("status", "failed").Err(err).Msg("admin bypass")
		return
	}
	ev.Str("status", "ok").Msg("admin bypass")
}
