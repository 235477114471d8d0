// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticKey struct {
	key []byte
	err error
}

func (s staticKey) Key() ([]byte, error) { return s.key, s.err }

func sampleHost() models.Host {
	return models.Host{
		ID:         "host-1",
		Name:       "db",
		Protocol:   models.ProtocolSSH,
		Hostname:   "10.0.0.5",
		Port:       22,
		Username:   "bob",
		Password:   "hunter2",
		PrivateKey: "key-material",
		Passphrase: "",
		TOTPSecret: "JBSWY3DPEHPK3PXP",
	}
}

func TestFieldCipher_HostRoundTrip(t *testing.T) {
	c := NewFieldCipher(staticKey{key: testKey})

	sealed, err := c.EncryptHost(sampleHost())
	require.NoError(t, err)
	assert.True(t, IsEncrypted(sealed.Password))
	assert.True(t, IsEncrypted(sealed.PrivateKey))
	assert.True(t, IsEncrypted(sealed.TOTPSecret))
	assert.Empty(t, sealed.Passphrase)
	assert.Equal(t, "bob", sealed.Username)

	opened, err := c.DecryptHost(sealed)
	require.NoError(t, err)
	assert.Equal(t, sampleHost(), opened)
}

func TestFieldCipher_EncryptHostIdempotent(t *testing.T) {
	c := NewFieldCipher(staticKey{key: testKey})

	once, err := c.EncryptHost(sampleHost())
	require.NoError(t, err)
	twice, err := c.EncryptHost(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFieldCipher_DecryptHostFailsWhole(t *testing.T) {
	c := NewFieldCipher(staticKey{key: testKey})
	sealed, err := c.EncryptHost(sampleHost())
	require.NoError(t, err)

	moved := sealed
	moved.ID = "host-2"
	opened, err := c.DecryptHost(moved)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Equal(t, models.Host{}, opened)
}

func TestFieldCipher_KeyError(t *testing.T) {
	boom := errors.New("no key")
	c := NewFieldCipher(staticKey{err: boom})

	_, err := c.EncryptHost(sampleHost())
	assert.ErrorIs(t, err, boom)
	_, err = c.DecryptHost(sampleHost())
	assert.ErrorIs(t, err, boom)
	_, err = c.Decrypt("hosts", "host-1", "password", "x")
	assert.ErrorIs(t, err, boom)
}

func TestFieldCipher_SingleField(t *testing.T) {
	c := NewFieldCipher(staticKey{key: testKey})

	sealed, err := c.Encrypt("hosts", "host-1", "password", "hunter2")
	require.NoError(t, err)
	opened, err := c.Decrypt("hosts", "host-1", "password", sealed)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", opened)

	_, err = c.Encrypt("hosts", "host-1", "hostname", "10.0.0.5")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = c.Decrypt("users", "u-1", "auth_hash", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRegistry_MatchesHostColumns(t *testing.T) {
	var h models.Host
	columns := make([]string, 0)
	for column := range hostFields(&h) {
		columns = append(columns, column)
	}
	slices.Sort(columns)

	registered := slices.Clone(EncryptedFields[h.TableName()])
	slices.Sort(registered)
	assert.True(t, reflect.DeepEqual(registered, columns))
	assert.Equal(t, []string{"hosts"}, Tables())
	assert.True(t, IsEncryptedField("hosts", "totp_secret"))
	assert.False(t, IsEncryptedField("hosts", "hostname"))
}
