// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-supplied input against the broker's
// business rules before it reaches storage.
//
// Validators are scoped: passing field names to Validate restricts the check
// to those fields, which lets callers validate partial updates.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
