// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the broker.
//
// Requests pass trace id, access logging and, for protected routes, bearer
// authentication. Routes that can reach stored secrets additionally require
// an unlocked vault: a locked or idle-expired session is answered with
// 423 Locked and {"error":"session_expired"}, which clients must treat as
// "log in again", not as a credential error.
package http
