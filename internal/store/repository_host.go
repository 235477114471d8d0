// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/models"
	sq "github.com/Masterminds/squirrel"
)

var hostColumns = []string{
	"id", "user_id", "name", "protocol", "hostname", "port", "username",
	"password", "private_key", "passphrase", "totp_secret", "proxy",
	"created_at", "updated_at",
}

const hostsTable = "hosts"

// hostRepository is the SQL implementation of [HostRepository].
type hostRepository struct {
	*DB
	logger *logger.Logger
}

// NewHostRepository constructs a [HostRepository] backed by db.
func NewHostRepository(db *DB, logger *logger.Logger) HostRepository {
	return &hostRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *hostRepository) CreateHost(ctx context.Context, h models.Host) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(hostsTable).
		Columns(hostColumns...).
		Values(h.ID, h.UserID, h.Name, string(h.Protocol), h.Hostname, h.Port, h.Username,
			h.Password, h.PrivateKey, h.Passphrase, h.TOTPSecret, h.Proxy,
			h.CreatedAt, h.UpdatedAt).
		ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "hostRepository.CreateHost").
			Str("host_id", h.ID).
			Msg("failed to insert host")
		return r.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (r *hostRepository) GetHost(ctx context.Context, userID, hostID string) (models.Host, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(hostColumns...).
		From(hostsTable).
		Where(sq.Eq{"id": hostID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Host{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	h, err := scanHost(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Host{}, ErrHostNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "hostRepository.GetHost").
			Str("host_id", hostID).
			Msg("failed to get host")
		return models.Host{}, r.wrap(ErrScanningRow, err)
	}

	return h, nil
}

func (r *hostRepository) ListHosts(ctx context.Context, userID string) ([]models.Host, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(hostColumns...).
		From(hostsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "hostRepository.ListHosts").
			Str("user_id", userID).
			Msg("failed to execute query for listing hosts")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	hosts := make([]models.Host, 0, 16)
	for rows.Next() {
		h, err := scanHost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		hosts = append(hosts, h)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(ErrScanningRows, err)
	}

	return hosts, nil
}

func (r *hostRepository) UpdateHost(ctx context.Context, h models.Host) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(hostsTable).
		SetMap(map[string]any{
			"name":        h.Name,
			"protocol":    string(h.Protocol),
			"hostname":    h.Hostname,
			"port":        h.Port,
			"username":    h.Username,
			"password":    h.Password,
			"private_key": h.PrivateKey,
			"passphrase":  h.Passphrase,
			"totp_secret": h.TOTPSecret,
			"proxy":       h.Proxy,
			"updated_at":  h.UpdatedAt,
		}).
		Where(sq.Eq{"id": h.ID, "user_id": h.UserID}).
		ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "hostRepository.UpdateHost").
			Str("host_id", h.ID).
			Msg("failed to update host")
		return r.wrap(ErrExecutingStatement, err)
	}

	return expectAffected(res)
}

func (r *hostRepository) DeleteHost(ctx context.Context, userID, hostID string) error {
	query, args, err := r.builder.
		Delete(hostsTable).
		Where(sq.Eq{"id": hostID, "user_id": userID}).
		ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return r.wrap(ErrExecutingStatement, err)
	}

	return expectAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHost(row rowScanner) (models.Host, error) {
	var (
		h        models.Host
		protocol string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &protocol, &h.Hostname, &h.Port, &h.Username,
		&h.Password, &h.PrivateKey, &h.Passphrase, &h.TOTPSecret, &h.Proxy,
		&h.CreatedAt, &h.UpdatedAt)
	h.Protocol = models.Protocol(protocol)
	return h, err
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrHostNotFound
	}
	return nil
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
