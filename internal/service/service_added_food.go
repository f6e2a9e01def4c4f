package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/internal/validators"
	"github.com/MKhiriev/go-diner/models"
)

type addedFoodService struct {
	addedFoodRepository store.AddedFoodRepository
	validator           validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewAddedFoodService(addedFoodRepository store.AddedFoodRepository, logger *logger.Logger) AddedFoodService {
	return &addedFoodService{
		addedFoodRepository: addedFoodRepository,
		validator:           validators.NewDinerValidator(),
		now:                 time.Now,
		logger:              logger,
	}
}

// AddFood stores a submission owned by the claim. A submission without an
// email is attributed to the claim owner.
func (a *addedFoodService) AddFood(ctx context.Context, claim models.Claim, food models.AddedFood) (models.AddedFood, error) {
	log := logger.FromContext(ctx)

	if err := CheckIdentity(claim, food.Email); err != nil {
		log.Warn().Str("claim", claim.Email).Str("email", food.Email).Msg("submission for another user rejected")
		return models.AddedFood{}, err
	}
	if food.Email == "" {
		food.Email = claim.Email
	}
	if err := a.validator.Validate(ctx, food); err != nil {
		log.Error().Err(err).Str("func", "*addedFoodService.AddFood").Str("name", food.Name).Msg("invalid submission")
		return models.AddedFood{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	food.CreatedAt = a.now().UTC()

	created, err := a.addedFoodRepository.CreateAddedFood(ctx, food)
	if err != nil {
		return models.AddedFood{}, fmt.Errorf("add food: %w", err)
	}
	return created, nil
}

func (a *addedFoodService) ListAddedFoods(ctx context.Context, claim models.Claim, email string, spec query.Spec) ([]models.AddedFood, error) {
	if err := CheckIdentity(claim, email); err != nil {
		logger.FromContext(ctx).Warn().Str("claim", claim.Email).Str("email", email).Msg("submission listing for another user rejected")
		return nil, err
	}

	if email != "" {
		spec = spec.WithFilter("email", query.Equals(email))
	}

	foods, err := a.addedFoodRepository.ListAddedFoods(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("list added foods: %w", err)
	}
	return foods, nil
}
