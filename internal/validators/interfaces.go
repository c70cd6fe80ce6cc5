// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks member and produk requests before they reach the
// services.
//
// Each validator switches on the concrete request type it is given and
// returns the first rule that fails. Passing field names limits the check to
// those fields; [ErrUnknownField] is returned for a name the validator does
// not know and [ErrUnsupportedType] for a request it does not handle.
package validators

import "context"

// Validator checks a request value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
