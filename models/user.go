// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a console account. The master password never reaches storage:
// only its Argon2id derivation (AuthHash) and the per-user AuthSalt are kept.
type User struct {
	// UserID is a server-assigned UUIDv7.
	UserID string `json:"user_id,omitempty"`

	// Login is the unique account name used to authenticate.
	Login string `json:"login"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	// Password carries the plaintext master password on register/login
	// requests only. It is cleared before the user is persisted or logged.
	Password string `json:"password,omitempty"`

	// AuthHash is the hex-encoded Argon2id hash of Password.
	AuthHash string `json:"-"`

	// AuthSalt is the hex-encoded random salt AuthHash was derived with.
	AuthSalt string `json:"-"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing [User].
func (u User) TableName() string {
	return "users"
}
