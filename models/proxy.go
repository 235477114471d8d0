// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DefaultProxyPort is used when a single proxy is configured without a port.
const DefaultProxyPort = 1080

// ProxyNode is one SOCKS hop of a [ProxyConfig.ProxyChain]. Credentials are
// per node; hops share nothing.
type ProxyNode struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	// ProtocolVersion must be 5. Zero is read as 5.
	ProtocolVersion int    `json:"protocolVersion,omitempty"`
	Username        string `json:"username,omitempty"`
	Password        string `json:"password,omitempty"`
}

// ProxyConfig describes how the broker reaches a target host.
//
// A nil ProxyChain means "no chain configured"; a non-nil empty ProxyChain is
// an explicit but invalid chain and is rejected by the connector. The JSON
// form keeps the distinction: null for no chain, [] for an empty one.
type ProxyConfig struct {
	UseProxy      bool        `json:"useProxy"`
	ProxyHost     string      `json:"proxyHost,omitempty"`
	ProxyPort     int         `json:"proxyPort,omitempty"`
	ProxyUsername string      `json:"proxyUsername,omitempty"`
	ProxyPassword string      `json:"proxyPassword,omitempty"`
	ProxyChain    []ProxyNode `json:"proxyChain"`
}

// Port returns ProxyPort or [DefaultProxyPort] when unset.
func (c ProxyConfig) Port() int {
	if c.ProxyPort == 0 {
		return DefaultProxyPort
	}
	return c.ProxyPort
}

// IsZero reports whether no proxy setting is present at all.
func (c ProxyConfig) IsZero() bool {
	return !c.UseProxy && c.ProxyHost == "" && c.ProxyChain == nil
}

// Value implements [driver.Valuer]; the config is stored as a JSON column.
func (c ProxyConfig) Value() (driver.Value, error) {
	if c.IsZero() {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner] for the JSON column written by Value.
func (c *ProxyConfig) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = ProxyConfig{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), c)
	case []byte:
		return json.Unmarshal(v, c)
	default:
		return fmt.Errorf("unsupported proxy column type %T", src)
	}
}
