// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags from args (without the program name).
//
// Flags:
//
//	-a                  server address in format [host]:[port]
//	-d                  database DSN
//	-c/-config          json file path with configs
//	-app-secret         general application secret
//	-vault-master-key   dedicated vault key (hex or raw)
//	-gateway-key        dedicated gateway token key (hex or raw)
//	-gateway-address    protocol gateway address host:port
//	-token-sign-key     token signing key
//	-token-issuer       token issuer name
//	-token-duration     token duration (e.g., "1h", "30m")
//	-idle-timeout       vault idle lock timeout (e.g., "15m")
//	-request-timeout    request timeout (e.g., "30s", "1m")
//	-log-level          zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-vault-broker", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var appSecret, vaultKey, gatewayKey, gatewayAddress string
	var tokenSignKey, tokenIssuer, logLevel string
	var tokenDuration, idleTimeout, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appSecret, "app-secret", "", "General application secret")
	fs.StringVar(&vaultKey, "vault-master-key", "", "Vault master key (64 hex chars or 32 raw bytes)")
	fs.StringVar(&gatewayKey, "gateway-key", "", "Gateway token key (64 hex chars or 32 raw bytes)")
	fs.StringVar(&gatewayAddress, "gateway-address", "", "Protocol gateway address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Vault idle lock timeout (e.g., 15m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Secret:        appSecret,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Vault: Vault{
			MasterKey:   vaultKey,
			IdleTimeout: idleTimeout,
		},
		Gateway: Gateway{
			Key:     gatewayKey,
			Address: gatewayAddress,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds all interfaces; otherwise the host must be "localhost"
// or an IP literal.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
