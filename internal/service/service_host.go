// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/internal/validators"
	"github.com/MKhiriev/go-vault-broker/models"
)

var defaultPorts = map[models.Protocol]int{
	models.ProtocolSSH:    22,
	models.ProtocolRDP:    3389,
	models.ProtocolVNC:    5900,
	models.ProtocolTelnet: 23,
}

type hostService struct {
	hosts     store.HostRepository
	cipher    HostCipher
	gate      SessionGate
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewHostService constructs a HostService. Every method requires the
// caller's vault to be unlocked.
func NewHostService(hosts store.HostRepository, cipher HostCipher, gate SessionGate, ids IDGenerator, log *logger.Logger) HostService {
	return &hostService{
		hosts:     hosts,
		cipher:    cipher,
		gate:      gate,
		ids:       ids,
		validator: validators.NewHostValidator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    log,
	}
}

// CreateHost assigns an id, seals the secret fields under it and stores the
// profile. The returned host carries no secrets.
func (s *hostService) CreateHost(ctx context.Context, userID string, host models.Host) (models.Host, error) {
	if err := s.gate.Require(userID); err != nil {
		return models.Host{}, err
	}
	if err := s.normalizeHost(ctx, &host); err != nil {
		return models.Host{}, err
	}

	now := s.now()
	host.ID = s.ids.Generate()
	host.UserID = userID
	host.CreatedAt = now
	host.UpdatedAt = now

	sealed, err := s.cipher.EncryptHost(host)
	if err != nil {
		return models.Host{}, fmt.Errorf("sealing host secrets: %w", err)
	}
	if err = s.hosts.CreateHost(ctx, sealed); err != nil {
		return models.Host{}, lockOnUnreachable(s.gate, err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Str("host_id", host.ID).Msg("host created")
	return redact(host), nil
}

func (s *hostService) GetHost(ctx context.Context, userID, hostID string) (models.Host, error) {
	if err := s.gate.Require(userID); err != nil {
		return models.Host{}, err
	}

	h, err := s.hosts.GetHost(ctx, userID, hostID)
	if err != nil {
		return models.Host{}, lockOnUnreachable(s.gate, err)
	}
	return redact(h), nil
}

func (s *hostService) ListHosts(ctx context.Context, userID string) ([]models.Host, error) {
	if err := s.gate.Require(userID); err != nil {
		return nil, err
	}

	hosts, err := s.hosts.ListHosts(ctx, userID)
	if err != nil {
		return nil, lockOnUnreachable(s.gate, err)
	}
	for i := range hosts {
		hosts[i] = redact(hosts[i])
	}
	return hosts, nil
}

// UpdateHost replaces the profile fields of an existing host. A secret
// field left empty keeps its stored value; a non-empty one is sealed anew.
func (s *hostService) UpdateHost(ctx context.Context, userID string, host models.Host) (models.Host, error) {
	if err := s.gate.Require(userID); err != nil {
		return models.Host{}, err
	}
	if err := s.normalizeHost(ctx, &host); err != nil {
		return models.Host{}, err
	}

	stored, err := s.hosts.GetHost(ctx, userID, host.ID)
	if err != nil {
		return models.Host{}, lockOnUnreachable(s.gate, err)
	}

	host.UserID = userID
	host.CreatedAt = stored.CreatedAt
	host.UpdatedAt = s.now()
	keepSecret(&host.Password, stored.Password)
	keepSecret(&host.PrivateKey, stored.PrivateKey)
	keepSecret(&host.Passphrase, stored.Passphrase)
	keepSecret(&host.TOTPSecret, stored.TOTPSecret)

	// stored values that are already sealed pass through unchanged; legacy
	// plaintext ones get sealed on the way
	sealed, err := s.cipher.EncryptHost(host)
	if err != nil {
		return models.Host{}, fmt.Errorf("sealing host secrets: %w", err)
	}
	if err = s.hosts.UpdateHost(ctx, sealed); err != nil {
		return models.Host{}, lockOnUnreachable(s.gate, err)
	}

	return redact(host), nil
}

func (s *hostService) DeleteHost(ctx context.Context, userID, hostID string) error {
	if err := s.gate.Require(userID); err != nil {
		return err
	}
	return lockOnUnreachable(s.gate, s.hosts.DeleteHost(ctx, userID, hostID))
}

// RevealCredentials decrypts the secret fields of one host. A field that
// cannot be decrypted fails the whole call; nothing partial is returned.
func (s *hostService) RevealCredentials(ctx context.Context, userID, hostID string) (models.Credentials, error) {
	if err := s.gate.Require(userID); err != nil {
		return models.Credentials{}, err
	}

	h, err := s.hosts.GetHost(ctx, userID, hostID)
	if err != nil {
		return models.Credentials{}, lockOnUnreachable(s.gate, err)
	}

	opened, err := s.cipher.DecryptHost(h)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("user_id", userID).
			Str("host_id", hostID).
			Msg("stored credential could not be decrypted")
		return models.Credentials{}, err
	}

	return models.CredentialsOf(opened), nil
}

// normalizeHost fills the protocol's default port and validates the
// profile.
func (s *hostService) normalizeHost(ctx context.Context, h *models.Host) error {
	if h.Port == 0 {
		h.Port = defaultPorts[h.Protocol]
	}
	if err := s.validator.Validate(ctx, h); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHost, err)
	}
	return nil
}

func keepSecret(field *string, stored string) {
	if *field == "" {
		*field = stored
	}
}
