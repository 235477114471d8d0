// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/config"
	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/mock"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "go-vault-broker",
	TokenDuration: time.Hour,
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher, *mock.MockSessionGate) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	gate := mock.NewMockSessionGate(ctrl)
	return NewAuthService(repo, hasher, gate, testAppConfig, logger.Nop()), repo, hasher, gate
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().GenerateSalt().Return("a1b2", nil),
		hasher.EXPECT().Hash("master-pw", "a1b2").Return("deadbeef", nil),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Login)
				assert.Equal(t, "a1b2", u.AuthSalt)
				assert.Equal(t, "deadbeef", u.AuthHash)
				assert.Empty(t, u.Password, "the master password must never reach storage")
				u.UserID = "u-1"
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "master-pw"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc, _, _, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)

	hasher.EXPECT().GenerateSalt().Return("a1", nil)
	hasher.EXPECT().Hash(gomock.Any(), gomock.Any()).Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_SaltError(t *testing.T) {
	svc, _, hasher, _ := newTestAuthSvc(t)

	hasher.EXPECT().GenerateSalt().Return("", errors.New("entropy exhausted"))

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "pw"})
	assert.ErrorContains(t, err, "error generating salt")
}

// ── Login / Logout ───────────────────────────────────────────────────────────

func TestAuthService_Login_UnlocksVault(t *testing.T) {
	svc, repo, hasher, gate := newTestAuthSvc(t)
	ctx := context.Background()
	stored := models.User{UserID: "u-1", Login: "alice", AuthHash: "hash", AuthSalt: "salt"}

	repo.EXPECT().FindUserByLogin(ctx, "alice").Return(stored, nil)
	hasher.EXPECT().Verify("pw", "hash", "salt").Return(true)
	gate.EXPECT().Unlock("u-1")

	token, err := svc.Login(ctx, models.User{Login: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", token.UserID)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
}

func TestAuthService_Login_WrongPasswordKeepsVaultLocked(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{UserID: "u-1", AuthHash: "h", AuthSalt: "s"}, nil)
	hasher.EXPECT().Verify("bad", "h", "s").Return(false)

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "bad"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo, _, _ := newTestAuthSvc(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_BackendUnreachableLocksEveryone(t *testing.T) {
	svc, repo, _, gate := newTestAuthSvc(t)
	unreachable := fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrBackendUnreachable)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, unreachable)
	gate.EXPECT().LockAll(gomock.Any())

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrBackendUnreachable)
}

func TestAuthService_Logout_LocksVault(t *testing.T) {
	svc, _, _, gate := newTestAuthSvc(t)

	gate.EXPECT().Lock("u-1")

	svc.Logout(context.Background(), "u-1")
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _, _, _ := newTestAuthSvc(t)

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
