// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyring

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func TestKey_ConfiguredHex(t *testing.T) {
	want := bytes.Repeat([]byte{0xab}, KeySize)
	kr := New(Source{Name: "vault", Configured: hex.EncodeToString(want), Secret: "ignored"}, logger.Nop())

	got, err := kr.Key()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, TierConfigured, kr.Tier())
}

func TestKey_ConfiguredRaw(t *testing.T) {
	raw := strings.Repeat("k", KeySize)
	kr := New(Source{Name: "vault", Configured: raw}, logger.Nop())

	got, err := kr.Key()
	require.NoError(t, err)
	assert.Equal(t, []byte(raw), got)
}

func TestKey_InvalidConfiguredFallsBackToDerived(t *testing.T) {
	var buf bytes.Buffer
	kr := New(Source{Name: "vault", Configured: "short", Secret: "s3cret", Suffix: VaultSuffix}, bufferedLogger(&buf))

	got, err := kr.Key()
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("s3cret" + VaultSuffix))
	assert.Equal(t, sum[:], got)
	assert.Equal(t, TierDerived, kr.Tier())
	assert.Contains(t, buf.String(), "configured key is invalid")
}

func TestKey_SuffixSeparatesDerivedKeys(t *testing.T) {
	vault, err := New(Source{Secret: "same", Suffix: VaultSuffix}, logger.Nop()).Key()
	require.NoError(t, err)
	gateway, err := New(Source{Secret: "same", Suffix: GatewaySuffix}, logger.Nop()).Key()
	require.NoError(t, err)

	assert.NotEqual(t, vault, gateway)
}

func TestKey_RandomTierIsAudited(t *testing.T) {
	var buf bytes.Buffer
	kr := New(Source{Name: "gateway"}, bufferedLogger(&buf))

	got, err := kr.Key()
	require.NoError(t, err)
	assert.Len(t, got, KeySize)
	assert.Equal(t, TierRandom, kr.Tier())
	assert.Contains(t, buf.String(), `"audit":"key_material_degraded"`)
	assert.Contains(t, buf.String(), `"key":"gateway"`)
}

func TestKey_StrictRefusesRandom(t *testing.T) {
	var buf bytes.Buffer
	kr := New(Source{Name: "vault", Strict: true}, bufferedLogger(&buf))

	got, err := kr.Key()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrKeyMaterialDegraded)
	assert.Equal(t, TierUnresolved, kr.Tier())
	assert.Contains(t, buf.String(), "key_material_degraded")
}

func TestKey_StrictAcceptsDerived(t *testing.T) {
	_, err := New(Source{Secret: "s", Strict: true}, logger.Nop()).Key()
	assert.NoError(t, err)
}

type countingReader struct {
	mu    sync.Mutex
	calls int
}

func (r *countingReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	for i := range p {
		p[i] = 7
	}
	return len(p), nil
}

func TestKey_ResolvedOnceUnderConcurrency(t *testing.T) {
	reader := &countingReader{}
	kr := New(Source{Name: "vault"}, logger.Nop())
	kr.random = reader

	var wg sync.WaitGroup
	keys := make([][]byte, 16)
	for i := range keys {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys[i], _ = kr.Key()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, reader.calls)
	for _, k := range keys {
		assert.Equal(t, keys[0], k)
	}
}

func TestKey_ReturnsCopy(t *testing.T) {
	kr := New(Source{Secret: "s"}, logger.Nop())
	first, err := kr.Key()
	require.NoError(t, err)
	first[0] ^= 0xff

	second, err := kr.Key()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestKey_RandomReadFailure(t *testing.T) {
	kr := New(Source{Name: "vault"}, logger.Nop())
	kr.random = failingReader{}

	_, err := kr.Key()
	assert.ErrorContains(t, err, "entropy exhausted")
}
