// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyring resolves the 32-byte symmetric keys used by the vault and
// by the gateway token service.
//
// A key is resolved once per [KeyRing] and then served from memory. The
// resolution order is:
//  1. the dedicated configured key (64 hex characters or 32 raw bytes);
//  2. SHA-256 over the general application secret and a per-purpose suffix;
//  3. 32 random bytes.
//
// The third tier produces a key that dies with the process, so anything
// encrypted under it is unreadable after a restart. It is always reported
// as a key_material_degraded audit event, and refused outright when the
// source is strict.
package keyring

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
)

// KeySize is the length in bytes of every key served by a [KeyRing].
const KeySize = 32

// Well-known suffixes that domain-separate keys derived from one secret.
const (
	VaultSuffix   = "vault-field-encryption"
	GatewaySuffix = "gateway-token-encryption"
)

// Tier reports how a key was obtained.
type Tier int

const (
	TierUnresolved Tier = iota
	TierConfigured
	TierDerived
	TierRandom
)

func (t Tier) String() string {
	switch t {
	case TierConfigured:
		return "configured"
	case TierDerived:
		return "derived"
	case TierRandom:
		return "random"
	default:
		return "unresolved"
	}
}

// Source describes where a key ring may take its key from.
type Source struct {
	// Name labels the key in logs ("vault", "gateway").
	Name string
	// Configured is the dedicated key, hex or raw.
	Configured string
	// Secret is the general application secret used for derivation.
	Secret string
	// Suffix domain-separates the derived key.
	Suffix string
	// Strict refuses the random tier.
	Strict bool
}

// KeyRing serves one memoized key. It is safe for concurrent use.
type KeyRing struct {
	src    Source
	logger *logger.Logger
	random io.Reader

	once sync.Once
	key  []byte
	tier Tier
	err  error
}

// New returns a KeyRing for src. No key material is touched until the first
// call to [KeyRing.Key].
func New(src Source, log *logger.Logger) *KeyRing {
	return &KeyRing{
		src:    src,
		logger: log,
		random: rand.Reader,
	}
}

// Key returns the resolved key. The first call performs resolution; all later
// calls, including concurrent ones, observe the same result. The returned
// slice is a copy.
func (k *KeyRing) Key() ([]byte, error) {
	k.once.Do(k.resolve)
	if k.err != nil {
		return nil, k.err
	}

	out := make([]byte, len(k.key))
	copy(out, k.key)
	return out, nil
}

// Tier reports the tier of the resolved key, resolving it if necessary.
func (k *KeyRing) Tier() Tier {
	k.once.Do(k.resolve)
	return k.tier
}

func (k *KeyRing) resolve() {
	if k.src.Configured != "" {
		key, err := parseConfigured(k.src.Configured)
		if err == nil {
			k.key, k.tier = key, TierConfigured
			return
		}
		k.logger.Warn().Err(err).Str("key", k.src.Name).
			Msg("configured key is invalid, falling back")
	}

	if k.src.Secret != "" {
		k.key, k.tier = derive(k.src.Secret, k.src.Suffix), TierDerived
		return
	}

	if k.src.Strict {
		k.logger.Audit("key_material_degraded").Str("key", k.src.Name).Bool("strict", true).
			Msg("no stable key material available, refusing random key")
		k.err = fmt.Errorf("%s key: %w", k.src.Name, ErrKeyMaterialDegraded)
		return
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(k.random, key); err != nil {
		k.err = fmt.Errorf("%s key: reading random bytes: %w", k.src.Name, err)
		return
	}
	k.key, k.tier = key, TierRandom
	k.logger.Audit("key_material_degraded").Str("key", k.src.Name).
		Msg("using an ephemeral random key, data encrypted now will be unreadable after restart")
}

// parseConfigured accepts 64 hex characters or exactly 32 raw bytes.
func parseConfigured(s string) ([]byte, error) {
	if len(s) == 2*KeySize {
		if key, err := hex.DecodeString(s); err == nil {
			return key, nil
		}
	}
	if len(s) == KeySize {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%w: got %d characters", ErrInvalidKey, len(s))
}

func derive(secret, suffix string) []byte {
	h := sha256.New()
	h.Write([]byte(secret))
	h.Write([]byte(suffix))
	return h.Sum(nil)
}
