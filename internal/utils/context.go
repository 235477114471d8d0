// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the HTTP layer and services:
// typed context keys, JWT issuing and parsing, JSON responses and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that keys set here never
// collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user's id.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190a7b6-...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored under [UserIDCtxKey].
// ok is false when the value is missing, empty or not a string.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
