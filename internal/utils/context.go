// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, session token
// issuing and verification, and storage identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-diner/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimCtxKey is the key used to store the authenticated [models.Claim] in
// the context. The session middleware writes it after a successful token
// verification; handlers read it with GetClaimFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimCtxKey, models.Claim{Email: "a@x.com"})
var ClaimCtxKey = contextKey("claim")

// GetClaimFromContext retrieves the authenticated claim from the context.
//
// Returns the claim and an ok flag:
//   - ok == true : value is found and has the models.Claim type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	claim, ok := utils.GetClaimFromContext(ctx)
//	if !ok {
//	    // request did not pass the session middleware
//	}
func GetClaimFromContext(ctx context.Context) (models.Claim, bool) {
	claim, ok := ctx.Value(ClaimCtxKey).(models.Claim)
	return claim, ok
}
