// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/models"
	xproxy "golang.org/x/net/proxy"
)

// HopTimeout bounds every single hop of a connection attempt.
const HopTimeout = 10 * time.Second

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Connector establishes proxied connections. It holds no per-connection
// state and is safe for concurrent use.
type Connector struct {
	hopTimeout time.Duration
	dial       dialFunc
	logger     *logger.Logger
}

// NewConnector returns a Connector dialing with a plain [net.Dialer].
func NewConnector(log *logger.Logger) *Connector {
	var d net.Dialer
	return &Connector{
		hopTimeout: HopTimeout,
		dial:       d.DialContext,
		logger:     log,
	}
}

// Connect returns a connection to host:port shaped by cfg.
//
// It returns (nil, nil) when cfg does not ask for a proxy; the caller then
// connects directly. A non-nil ProxyChain takes precedence over ProxyHost.
func (c *Connector) Connect(ctx context.Context, host string, port int, cfg models.ProxyConfig) (net.Conn, error) {
	if !cfg.UseProxy {
		return nil, nil
	}

	if cfg.ProxyChain != nil {
		return c.ConnectChain(ctx, cfg.ProxyChain, host, port)
	}

	if cfg.ProxyHost != "" {
		return c.ConnectSingle(ctx, cfg, host, port)
	}

	return nil, nil
}

// ConnectSingle tunnels to host:port through the single proxy in cfg.
func (c *Connector) ConnectSingle(ctx context.Context, cfg models.ProxyConfig, host string, port int) (net.Conn, error) {
	target, err := endpoint(host, port)
	if err != nil {
		return nil, err
	}
	node := models.ProxyNode{
		Host:     cfg.ProxyHost,
		Port:     cfg.Port(),
		Username: cfg.ProxyUsername,
		Password: cfg.ProxyPassword,
	}
	proxyAddr, err := nodeAddress(node)
	if err != nil {
		return nil, err
	}

	hopCtx, cancel := context.WithTimeout(ctx, c.hopTimeout)
	defer cancel()

	dialer, err := xproxy.SOCKS5("tcp", proxyAddr, auth(node), contextDialer(c.dial))
	if err != nil {
		return nil, fmt.Errorf("proxy %s: %w", proxyAddr, err)
	}
	conn, err := dialer.(xproxy.ContextDialer).DialContext(hopCtx, "tcp", target)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s via proxy %s: %w", target, proxyAddr, err)
	}

	c.logger.Debug().Str("proxy", proxyAddr).Str("target", target).Msg("proxy tunnel established")
	return conn, nil
}

// ConnectChain tunnels to host:port through nodes in order.
//
// Node 0 is dialed directly. Then node i is asked, over the tunnel built so
// far, to CONNECT to node i+1, and the last node to the target. A failure
// at any hop closes the tunnel and returns a [*ConnectError]. Configuration
// errors are returned before any socket is opened.
func (c *Connector) ConnectChain(ctx context.Context, nodes []models.ProxyNode, host string, port int) (net.Conn, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyChain
	}
	target, err := endpoint(host, port)
	if err != nil {
		return nil, err
	}
	addrs := make([]string, len(nodes))
	for i, node := range nodes {
		if node.ProtocolVersion != 0 && node.ProtocolVersion != 5 {
			return nil, fmt.Errorf("node %d: %w: %d", i, ErrUnsupportedProxyVersion, node.ProtocolVersion)
		}
		if addrs[i], err = nodeAddress(node); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}

	fail := func(hop int, to string, err error) error {
		return &ConnectError{Hop: hop, Hops: len(nodes), Proxy: addrs[hop], Target: to, Err: err}
	}

	conn, err := c.hop(ctx, func(hopCtx context.Context) (net.Conn, error) {
		return c.dial(hopCtx, "tcp", addrs[0])
	})
	if err != nil {
		return nil, fail(0, addrs[0], err)
	}

	for i, node := range nodes {
		next := target
		if i+1 < len(nodes) {
			next = addrs[i+1]
		}

		tunnel := conn
		conn, err = c.hop(ctx, func(hopCtx context.Context) (net.Conn, error) {
			dialer, err := xproxy.SOCKS5("tcp", addrs[i], auth(node), &tunnelDialer{conn: tunnel})
			if err != nil {
				return nil, err
			}
			return dialer.(xproxy.ContextDialer).DialContext(hopCtx, "tcp", next)
		})
		if err != nil {
			tunnel.Close()
			c.logger.Debug().Int("hop", i).Str("proxy", addrs[i]).Str("target", next).Err(err).
				Msg("proxy chain hop failed")
			return nil, fail(i, next, err)
		}

		c.logger.Debug().Int("hop", i).Str("proxy", addrs[i]).Str("target", next).Msg("proxy chain hop established")
	}

	return conn, nil
}

// hop runs one step of a connection attempt under its own timeout.
func (c *Connector) hop(ctx context.Context, step func(context.Context) (net.Conn, error)) (net.Conn, error) {
	hopCtx, cancel := context.WithTimeout(ctx, c.hopTimeout)
	defer cancel()
	return step(hopCtx)
}

func endpoint(host string, port int) (string, error) {
	if host == "" || port < 1 || port > 65535 {
		return "", fmt.Errorf("%w: %q port %d", ErrMissingProxyTarget, host, port)
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), nil
}

func nodeAddress(node models.ProxyNode) (string, error) {
	return endpoint(node.Host, node.Port)
}

func auth(node models.ProxyNode) *xproxy.Auth {
	if node.Username == "" && node.Password == "" {
		return nil
	}
	return &xproxy.Auth{User: node.Username, Password: node.Password}
}
