// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

// ErrSessionExpired means the user must re-authenticate before any of their
// credentials can be read. It is distinct from an authentication failure.
var ErrSessionExpired = errors.New("session expired")
