// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("Authorization required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the `email:password` format
	// (i.e. the colon separator is missing).
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")
)
