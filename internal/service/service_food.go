package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/internal/validators"
	"github.com/MKhiriev/go-diner/models"
)

type foodService struct {
	foodRepository store.FoodRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewFoodService returns a FoodService backed by foodRepository.
func NewFoodService(foodRepository store.FoodRepository, logger *logger.Logger) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		validator:      validators.NewDinerValidator(),
		logger:         logger,
	}
}

func (f *foodService) ListFoods(ctx context.Context, spec query.Spec) ([]models.Food, error) {
	foods, err := f.foodRepository.ListFoods(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

func (f *foodService) GetFood(ctx context.Context, foodID int64) (models.Food, error) {
	food, err := f.foodRepository.GetFoodByFoodID(ctx, foodID)
	if err != nil {
		return models.Food{}, fmt.Errorf("get food %d: %w", foodID, err)
	}
	return food, nil
}

// UpdateFood writes the non-nil fields of update. An update without an id,
// without fields or with a negative value is rejected with
// ErrInvalidDataProvided.
func (f *foodService) UpdateFood(ctx context.Context, update models.FoodUpdate) (models.Food, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Str("func", "*foodService.UpdateFood").Str("id", update.ID).Msg("invalid food update")
		return models.Food{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	food, err := f.foodRepository.UpdateFood(ctx, update)
	if err != nil {
		return models.Food{}, fmt.Errorf("update food %s: %w", update.ID, err)
	}
	return food, nil
}

func (f *foodService) CountFoods(ctx context.Context) (int64, error) {
	count, err := f.foodRepository.CountFoods(ctx)
	if err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return count, nil
}
