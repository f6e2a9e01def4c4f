// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrNoTokenCookie is returned by the session middleware when the
	// request carries no `token` cookie.
	ErrNoTokenCookie = errors.New("no `token` cookie")

	// ErrEmptyToken is returned when the `token` cookie is present but empty.
	ErrEmptyToken = errors.New("empty `token` cookie")

	// ErrNoClaimInContext is returned by handlers behind the session
	// middleware when the request context carries no claim.
	ErrNoClaimInContext = errors.New("no claim in request context")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParameter is returned when a path parameter has the
	// wrong type.
	ErrInvalidPathParameter = errors.New("invalid path parameter")
)
