package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diner/models"
	"github.com/golang-jwt/jwt/v5"
)

// IssueToken creates a signed HMAC-SHA256 session token for the given claim.
//
// The token payload carries the claim attributes (email, name, photoURL)
// flattened next to the standard registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the claim email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// Returns an error if the issuer, sign key or email is empty or ttl is not
// positive.
//
// Example usage:
//
//	token, err := utils.IssueToken(models.Claim{Email: "a@x.com"}, "go-diner", time.Hour, "secret")
func IssueToken(claim models.Claim, issuer string, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || ttl <= 0 || signKey == "" || claim.Email == "" {
		return models.Token{}, errors.New("invalid params for issuing token")
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &models.TokenClaims{
		Claim: claim,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   claim.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Claim:        claim,
		ExpiresAt:    jwt.NewNumericDate(expiresAt).Time,
	}, nil
}

// VerifyToken validates the given session token and extracts its claim.
//
// Checks are applied in this order:
//  1. the token parses, is HS256 and carries an exp claim, else [ErrTokenMalformed];
//  2. exp is not in the past, else [ErrTokenExpired] (whatever the signature);
//  3. the HS256 signature matches, else [ErrTokenSignatureInvalid];
//  4. the issuer matches and the email is present, else [ErrTokenMalformed].
//
// Example usage:
//
//	claim, err := utils.VerifyToken(raw, "secret", "go-diner")
//	if errors.Is(err, utils.ErrTokenExpired) {
//	    // ask the client to log in again
//	}
func VerifyToken(tokenString, signKey, issuer string) (models.Claim, error) {
	unverified := &models.TokenClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, unverified)
	if err != nil {
		return models.Claim{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	if parsed.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return models.Claim{}, fmt.Errorf("%w: unexpected signing method %s", ErrTokenMalformed, parsed.Method.Alg())
	}
	if unverified.ExpiresAt == nil {
		return models.Claim{}, fmt.Errorf("%w: missing exp claim", ErrTokenMalformed)
	}
	if time.Now().After(unverified.ExpiresAt.Time) {
		return models.Claim{}, ErrTokenExpired
	}

	claims := &models.TokenClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return models.Claim{}, ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claim{}, ErrTokenExpired
	default:
		return models.Claim{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	if claims.Email == "" {
		return models.Claim{}, fmt.Errorf("%w: empty email", ErrTokenMalformed)
	}

	return claims.Claim, nil
}
