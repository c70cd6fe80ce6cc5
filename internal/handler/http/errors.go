// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself.
var (
	// errInvalidJSON is returned when the request body is not valid JSON or
	// does not fit the expected request shape.
	errInvalidJSON = errors.New("Invalid JSON was passed")

	// errInvalidGzip is returned when a gzip-encoded request body cannot be
	// decompressed.
	errInvalidGzip = errors.New("Invalid gzip data")

	// ErrInvalidAuthorizationHeader is reported when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
