// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{"stored", WithUserID(context.Background(), "u-1"), "u-1", true},
		{"missing", context.Background(), "", false},
		{"empty", WithUserID(context.Background(), ""), "", false},
		{"wrong type", context.WithValue(context.Background(), UserIDCtxKey, int64(42)), "", false},
		{"other key", context.WithValue(context.Background(), contextKey("other"), "u-1"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
