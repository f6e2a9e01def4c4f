// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Claim is the identity carried inside a signed session token.
//
// It is produced at login from the identity the client submits to POST /jwt,
// embedded into the token payload and decoded back on every authenticated
// request. Email is the only required attribute; Name and PhotoURL are
// optional metadata echoed back to the client.
type Claim struct {
	// Email uniquely identifies the user and scopes all per-user data
	// (orders, added foods, the user record itself).
	Email string `json:"email"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	// PhotoURL is the optional avatar URL of the user.
	PhotoURL string `json:"photoURL,omitempty"`
}
