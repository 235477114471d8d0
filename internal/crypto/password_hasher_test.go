// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *argon2Hasher {
	return &argon2Hasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 32, random: rand.Reader}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	h := newTestHasher()

	s1, err := h.GenerateSalt()
	require.NoError(t, err)
	s2, err := h.GenerateSalt()
	require.NoError(t, err)

	raw, err := hex.DecodeString(s1)
	require.NoError(t, err)
	assert.Len(t, raw, saltSize)
	assert.NotEqual(t, s1, s2)
}

func TestGenerateSalt_RandomFailure(t *testing.T) {
	h := newTestHasher()
	h.random = iotest.ErrReader(errors.New("entropy exhausted"))

	_, err := h.GenerateSalt()
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestHashAndVerify(t *testing.T) {
	h := newTestHasher()
	salt := hex.EncodeToString(bytes.Repeat([]byte{7}, saltSize))

	hash, err := h.Hash("correct horse", salt)
	require.NoError(t, err)
	again, err := h.Hash("correct horse", salt)
	require.NoError(t, err)

	assert.Equal(t, hash, again, "hashing is deterministic for a given salt")
	assert.Len(t, hash, 64)
	assert.True(t, h.Verify("correct horse", hash, salt))
	assert.False(t, h.Verify("wrong horse", hash, salt))
	assert.False(t, h.Verify("correct horse", "zz", salt))
	assert.False(t, h.Verify("correct horse", hash, "not-hex"))
}

func TestHash_DifferentSaltsDiffer(t *testing.T) {
	h := newTestHasher()

	a, err := h.Hash("pw", "00")
	require.NoError(t, err)
	b, err := h.Hash("pw", "01")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = h.Hash("pw", "")
	assert.Error(t, err)
}
