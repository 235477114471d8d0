// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Protocol is the remote-access protocol of a [Host].
type Protocol string

const (
	ProtocolSSH    Protocol = "ssh"
	ProtocolRDP    Protocol = "rdp"
	ProtocolVNC    Protocol = "vnc"
	ProtocolTelnet Protocol = "telnet"
)

// Valid reports whether p is one of the supported protocols.
func (p Protocol) Valid() bool {
	switch p {
	case ProtocolSSH, ProtocolRDP, ProtocolVNC, ProtocolTelnet:
		return true
	}
	return false
}

// UsesGateway reports whether sessions of this protocol go through the
// external protocol gateway instead of a raw socket.
func (p Protocol) UsesGateway() bool {
	return p == ProtocolRDP || p == ProtocolVNC || p == ProtocolTelnet
}

// Host is a stored connection profile.
//
// Password, PrivateKey, Passphrase and TOTPSecret are encryptable: at rest
// they hold either legacy plaintext or a field envelope bound to
// (ID, column name). Other fields are stored in clear.
type Host struct {
	ID       string   `json:"id"`
	UserID   string   `json:"-"`
	Name     string   `json:"name"`
	Protocol Protocol `json:"protocol"`
	Hostname string   `json:"hostname"`
	Port     int      `json:"port"`
	Username string   `json:"username,omitempty"`

	Password   string `json:"password,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
	TOTPSecret string `json:"totp_secret,omitempty"`

	// Proxy overrides the global proxy settings for this host when non-zero.
	Proxy ProxyConfig `json:"proxy,omitzero"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing [Host].
func (h Host) TableName() string {
	return "hosts"
}

// Credentials is the decrypted secret material of a [Host] handed to a
// session collaborator (SSH client, gateway).
type Credentials struct {
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
	TOTPSecret string `json:"totp_secret,omitempty"`
}

// CredentialsOf extracts the secret fields of h as they currently are.
func CredentialsOf(h Host) Credentials {
	return Credentials{
		Username:   h.Username,
		Password:   h.Password,
		PrivateKey: h.PrivateKey,
		Passphrase: h.Passphrase,
		TOTPSecret: h.TOTPSecret,
	}
}
