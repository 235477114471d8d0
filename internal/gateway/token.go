// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-vault-broker/internal/logger"
)

// Descriptor is the payload of a gateway token.
type Descriptor struct {
	ConnectionType string         `json:"connectionType"`
	Settings       map[string]any `json:"settings"`
}

type wireToken struct {
	IV    string `json:"iv"`
	Value string `json:"value"`
}

// KeyProvider supplies the 32-byte gateway key. *keyring.KeyRing
// satisfies it.
type KeyProvider interface {
	Key() ([]byte, error)
}

// TokenService creates and opens gateway tokens. It keeps no per-token
// state and is safe for concurrent use.
type TokenService struct {
	keys   KeyProvider
	random io.Reader
	logger *logger.Logger
}

// NewTokenService returns a TokenService using keys for the gateway key.
func NewTokenService(keys KeyProvider, log *logger.Logger) *TokenService {
	return &TokenService{
		keys:   keys,
		random: rand.Reader,
		logger: log,
	}
}

// CreateToken builds a descriptor for connType and seals it.
//
// Settings are layered, later layers winning: the defaults of connType,
// then {"hostname": hostname}, then credentials, then options. Nil maps are
// treated as empty.
func (s *TokenService) CreateToken(connType, hostname string, credentials, options map[string]any) (string, error) {
	if connType == "" {
		return "", ErrEmptyConnectionType
	}

	settings := defaultSettings(connType)
	for _, layer := range []map[string]any{{"hostname": hostname}, credentials, options} {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&settings, layer, mergo.WithOverride); err != nil {
			return "", fmt.Errorf("merging settings: %w", err)
		}
	}

	payload, err := json.Marshal(Descriptor{ConnectionType: connType, Settings: settings})
	if err != nil {
		return "", fmt.Errorf("encoding descriptor: %w", err)
	}

	key, err := s.keys.Key()
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(s.random, iv); err != nil {
		return "", fmt.Errorf("generating iv: %w", err)
	}

	padded := pkcs7Pad(payload, aes.BlockSize)
	sealed := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(sealed, padded)

	wire, err := json.Marshal(wireToken{
		IV:    base64.StdEncoding.EncodeToString(iv),
		Value: base64.StdEncoding.EncodeToString(sealed),
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug().Str("connection_type", connType).Msg("gateway token issued")
	return base64.StdEncoding.EncodeToString(wire), nil
}

// DecryptToken opens a token produced by [TokenService.CreateToken]. It
// returns nil for any malformed, foreign or tampered-with token that does
// not decode to a descriptor.
func (s *TokenService) DecryptToken(token string) *Descriptor {
	wire, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	var w wireToken
	if err := json.Unmarshal(wire, &w); err != nil {
		return nil
	}
	iv, err := base64.StdEncoding.DecodeString(w.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return nil
	}
	sealed, err := base64.StdEncoding.DecodeString(w.Value)
	if err != nil || len(sealed) == 0 || len(sealed)%aes.BlockSize != 0 {
		return nil
	}

	key, err := s.keys.Key()
	if err != nil {
		return nil
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil
	}

	padded := make([]byte, len(sealed))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, sealed)
	payload, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil
	}

	var d Descriptor
	if err := json.Unmarshal(payload, &d); err != nil || d.ConnectionType == "" {
		return nil
	}
	return &d
}
