// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUnauthorizedAccess      = errors.New("unauthorized access")

	ErrInvalidHost = errors.New("invalid host profile")

	// ErrProtocolNotBrokered is returned when a gateway token is requested
	// for a protocol the gateway does not serve.
	ErrProtocolNotBrokered = errors.New("protocol is not served by the gateway")
)
