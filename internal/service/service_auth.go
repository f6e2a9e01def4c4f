package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diner/internal/config"
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/utils"
	"github.com/MKhiriev/go-diner/internal/validators"
	"github.com/MKhiriev/go-diner/models"
)

// authService is the concrete implementation of AuthService.
// It turns identity claims into signed session tokens and back.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// validator rejects claims without an identity.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validators.NewDinerValidator(),
		logger:        logger,
	}
}

// CreateToken issues a signed token for the given claim.
//
// Returns ErrInvalidDataProvided when the claim carries no email, or a
// wrapped ErrTokenCreationFailed if signing fails.
func (a *authService) CreateToken(ctx context.Context, claim models.Claim) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, claim); err != nil {
		log.Error().Err(err).Msg("invalid claim provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := utils.IssueToken(claim, a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("email", claim.Email).Msg("token issuing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies a raw token string and returns its claim.
//
// Any verification failure (expired, bad signature, malformed) is logged
// with its cause and normalised to ErrTokenIsExpiredOrInvalid so that
// callers never leak the specific reason.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claim, error) {
	claim, err := utils.VerifyToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return models.Claim{}, ErrTokenIsExpiredOrInvalid
	}

	return claim, nil
}
