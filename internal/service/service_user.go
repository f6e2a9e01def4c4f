package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/internal/validators"
	"github.com/MKhiriev/go-diner/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewDinerValidator(),
		logger:         logger,
	}
}

// CreateUser stores user. A second record for the same email fails with
// store.ErrEmailAlreadyExists.
func (u *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := u.validator.Validate(ctx, user); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "*userService.CreateUser").Msg("invalid user")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// GetUser returns the record of email, which must belong to the claim.
func (u *userService) GetUser(ctx context.Context, claim models.Claim, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if err := CheckIdentity(claim, email); err != nil {
		logger.FromContext(ctx).Warn().Str("claim", claim.Email).Str("email", email).Msg("user lookup for another user rejected")
		return models.User{}, err
	}

	user, err := u.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
