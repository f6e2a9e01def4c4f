// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload of a session token: the identity [Claim]
// flattened next to the standard registered claims (iss, sub, iat, exp).
type TokenClaims struct {
	Claim
	jwt.RegisteredClaims
}

// Token is an issued session token.
type Token struct {
	// SignedString is the compact JWS serialization
	// (base64url header.payload.signature) stored in the `token` cookie.
	SignedString string `json:"-"`

	// Claim is the identity the token was issued for.
	Claim Claim `json:"-"`

	// ExpiresAt is the absolute expiry time embedded into the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
