// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/config"
	"github.com/MKhiriev/go-vault-broker/internal/connlog"
	"github.com/MKhiriev/go-vault-broker/internal/gateway"
	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/models"
)

type brokerService struct {
	hosts     store.HostRepository
	cipher    HostCipher
	gate      SessionGate
	connector ProxyConnector
	tokens    TokenIssuer
	connLog   connlog.Logger

	globalProxy    models.ProxyConfig
	gatewayAddress string
	probeTimeout   time.Duration

	dial  func(ctx context.Context, network, address string) (net.Conn, error)
	probe func(ctx context.Context, address string, timeout time.Duration) error

	logger *logger.Logger
}

// NewBrokerService constructs a BrokerService. Hosts without their own
// proxy settings use the global proxy of cfg.
func NewBrokerService(
	hosts store.HostRepository,
	cipher HostCipher,
	gate SessionGate,
	connector ProxyConnector,
	tokens TokenIssuer,
	connLog connlog.Logger,
	cfg config.StructuredConfig,
	log *logger.Logger,
) BrokerService {
	var d net.Dialer
	return &brokerService{
		hosts:          hosts,
		cipher:         cipher,
		gate:           gate,
		connector:      connector,
		tokens:         tokens,
		connLog:        connLog,
		globalProxy:    cfg.Proxy.ProxyConfig(),
		gatewayAddress: cfg.Gateway.Address,
		probeTimeout:   cfg.Gateway.ProbeTimeout,
		dial:           d.DialContext,
		probe:          gateway.Probe,
		logger:         log,
	}
}

func (b *brokerService) Dial(ctx context.Context, userID, hostID string) (net.Conn, error) {
	conn, _, err := b.dialHost(ctx, userID, hostID)
	return conn, err
}

func (b *brokerService) TestConnection(ctx context.Context, userID, hostID string) (models.ConnectionReport, error) {
	start := time.Now()
	conn, report, err := b.dialHost(ctx, userID, hostID)
	if err != nil {
		return models.ConnectionReport{}, err
	}
	conn.Close()

	report.Elapsed = time.Since(start)
	return report, nil
}

func (b *brokerService) dialHost(ctx context.Context, userID, hostID string) (net.Conn, models.ConnectionReport, error) {
	if err := b.gate.Require(userID); err != nil {
		return nil, models.ConnectionReport{}, err
	}

	h, err := b.hosts.GetHost(ctx, userID, hostID)
	if err != nil {
		return nil, models.ConnectionReport{}, lockOnUnreachable(b.gate, err)
	}

	cfg := h.Proxy
	if cfg.IsZero() {
		cfg = b.globalProxy
	}
	report := models.ConnectionReport{
		HostID: h.ID,
		Target: net.JoinHostPort(h.Hostname, strconv.Itoa(h.Port)),
		Route:  routeOf(cfg),
	}
	entry := connlog.Entry{UserID: userID, HostID: h.ID, Target: report.Target}

	entry.Stage = connlog.StageResolving
	entry.Detail = string(report.Route)
	b.connLog.Log(entry)

	start := time.Now()
	conn, err := b.connector.Connect(ctx, h.Hostname, h.Port, cfg)
	if err == nil && conn == nil {
		entry.Stage = connlog.StageDirect
		entry.Detail = ""
		b.connLog.Log(entry)
		conn, err = b.dial(ctx, "tcp", report.Target)
	}
	entry.Duration = time.Since(start)
	if err != nil {
		entry.Stage = connlog.StageFailed
		entry.Err = err
		b.connLog.Log(entry)
		return nil, models.ConnectionReport{}, err
	}

	entry.Stage = connlog.StageEstablished
	b.connLog.Log(entry)
	return conn, report, nil
}

// GatewayToken decrypts the host credentials, checks that the gateway is
// reachable and issues a token carrying them.
func (b *brokerService) GatewayToken(ctx context.Context, userID, hostID string, options map[string]any) (models.GatewayToken, error) {
	if err := b.gate.Require(userID); err != nil {
		return models.GatewayToken{}, err
	}

	h, err := b.hosts.GetHost(ctx, userID, hostID)
	if err != nil {
		return models.GatewayToken{}, lockOnUnreachable(b.gate, err)
	}
	if !h.Protocol.UsesGateway() {
		return models.GatewayToken{}, fmt.Errorf("%w: %s", ErrProtocolNotBrokered, h.Protocol)
	}

	opened, err := b.cipher.DecryptHost(h)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("user_id", userID).
			Str("host_id", hostID).
			Msg("gateway credentials could not be decrypted")
		return models.GatewayToken{}, err
	}

	entry := connlog.Entry{UserID: userID, HostID: h.ID, Target: b.gatewayAddress}
	if b.gatewayAddress != "" {
		start := time.Now()
		err = b.probe(ctx, b.gatewayAddress, b.probeTimeout)
		entry.Stage = connlog.StageGatewayProbe
		entry.Duration = time.Since(start)
		entry.Err = err
		b.connLog.Log(entry)
		if err != nil {
			return models.GatewayToken{}, err
		}
	}

	token, err := b.tokens.CreateToken(string(h.Protocol), h.Hostname, gatewayCredentials(opened), options)
	if err != nil {
		return models.GatewayToken{}, fmt.Errorf("creating gateway token: %w", err)
	}

	entry.Stage = connlog.StageGatewayToken
	entry.Duration = 0
	entry.Err = nil
	entry.Detail = string(h.Protocol)
	b.connLog.Log(entry)

	return models.GatewayToken{
		Token:          token,
		ConnectionType: string(h.Protocol),
		Gateway:        b.gatewayAddress,
	}, nil
}

// gatewayCredentials builds the credential layer of the token settings.
// The host port is included so it overrides the protocol default.
func gatewayCredentials(h models.Host) map[string]any {
	creds := map[string]any{"port": h.Port}
	if h.Username != "" {
		creds["username"] = h.Username
	}
	if h.Password != "" {
		creds["password"] = h.Password
	}
	if h.PrivateKey != "" {
		creds["private-key"] = h.PrivateKey
	}
	if h.Passphrase != "" {
		creds["passphrase"] = h.Passphrase
	}
	return creds
}

func routeOf(cfg models.ProxyConfig) models.Route {
	switch {
	case !cfg.UseProxy:
		return models.RouteDirect
	case cfg.ProxyChain != nil:
		return models.RouteProxyChain
	case cfg.ProxyHost != "":
		return models.RouteProxy
	}
	return models.RouteDirect
}
