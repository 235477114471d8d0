// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	keySize  = 32
	saltSize = 32
	ivSize   = 16
	tagSize  = 16
)

// EncryptField seals plaintext under a key bound to (recordID, fieldName).
//
// An empty plaintext and a value that already is an envelope are returned
// unchanged. Each call draws a fresh salt and IV, so sealing the same input
// twice yields different envelopes.
func EncryptField(plaintext string, masterKey []byte, recordID, fieldName string) (string, error) {
	return encryptField(rand.Reader, plaintext, masterKey, recordID, fieldName)
}

func encryptField(random io.Reader, plaintext string, masterKey []byte, recordID, fieldName string) (string, error) {
	if plaintext == "" || IsEncrypted(plaintext) {
		return plaintext, nil
	}
	if len(masterKey) != keySize {
		return "", ErrInvalidMasterKey
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(random, salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return "", fmt.Errorf("generating iv: %w", err)
	}

	gcm, err := fieldAEAD(masterKey, salt, recordID, fieldName)
	if err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	data, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return Envelope{
		Data: hex.EncodeToString(data),
		IV:   hex.EncodeToString(iv),
		Tag:  hex.EncodeToString(tag),
		Salt: hex.EncodeToString(salt),
	}.encode()
}

// DecryptField opens an envelope produced by [EncryptField] for the same
// (recordID, fieldName). A value that is not an envelope is legacy plaintext
// and is returned unchanged. Any other failure is a [*FieldError]; the
// returned string is then always empty and must not be used.
func DecryptField(encoded string, masterKey []byte, recordID, fieldName string) (string, error) {
	env, ok := ParseEnvelope(encoded)
	if !ok {
		return encoded, nil
	}
	if len(masterKey) != keySize {
		return "", ErrInvalidMasterKey
	}

	fail := func(reason string) (string, error) {
		return "", &FieldError{RecordID: recordID, FieldName: fieldName, Reason: reason}
	}

	data, err := hex.DecodeString(env.Data)
	if err != nil {
		return fail("malformed data")
	}
	iv, err := hex.DecodeString(env.IV)
	if err != nil || len(iv) != ivSize {
		return fail("malformed iv")
	}
	tag, err := hex.DecodeString(env.Tag)
	if err != nil || len(tag) != tagSize {
		return fail("malformed tag")
	}
	salt, err := hex.DecodeString(env.Salt)
	if err != nil || len(salt) != saltSize {
		return fail("malformed salt")
	}

	gcm, err := fieldAEAD(masterKey, salt, recordID, fieldName)
	if err != nil {
		return fail("key derivation failed")
	}

	plaintext, err := gcm.Open(nil, iv, append(data, tag...), nil)
	if err != nil {
		return fail("authentication failed")
	}

	return string(plaintext), nil
}

// fieldAEAD derives the field key and returns AES-256-GCM with a 16-byte IV.
func fieldAEAD(masterKey, salt []byte, recordID, fieldName string) (cipher.AEAD, error) {
	info := []byte(recordID + ":" + fieldName)
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, salt, info), key); err != nil {
		return nil, fmt.Errorf("deriving field key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, ivSize)
}
