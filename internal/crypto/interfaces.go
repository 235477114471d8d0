// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns console master passwords into storable verifiers.
// It knows nothing about users, storage or the vault key.
type PasswordHasher interface {
	// GenerateSalt returns a fresh random salt, hex encoded.
	GenerateSalt() (string, error)

	// Hash derives the hex-encoded verifier of password under salt.
	Hash(password, salt string) (string, error)

	// Verify reports whether password matches the stored hash and salt.
	// The comparison is constant time.
	Verify(password, hash, salt string) bool
}
