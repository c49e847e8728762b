// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned to callers of the HTTP surface. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenExpired is returned when the bearer token is past its expiry.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidToken is returned for tokens with a bad signature, issuer
	// or subject.
	ErrInvalidToken = errors.New("invalid token")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrNoItems     = errors.New("no items provided")
)
