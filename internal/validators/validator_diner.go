package validators

import (
	"context"

	"github.com/MKhiriev/go-diner/models"
)

const (
	FieldID         = "id"
	FieldEmail      = "email"
	FieldName       = "name"
	FieldFoodID     = "food_id"
	FieldPrice      = "price"
	FieldQuantity   = "quantity"
	FieldOrderCount = "order_count"
	FieldUpdates    = "updates"
)

type DinerValidator struct {
}

func NewDinerValidator() Validator {
	return &DinerValidator{}
}

func (v *DinerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Order:
		return v.validateOrder(ctx, value, fields...)
	case *models.Order:
		return v.validateOrder(ctx, *value, fields...)

	case models.FoodUpdate:
		return v.validateFoodUpdate(ctx, value, fields...)
	case *models.FoodUpdate:
		return v.validateFoodUpdate(ctx, *value, fields...)

	case models.AddedFood:
		return v.validateAddedFood(ctx, value, fields...)
	case *models.AddedFood:
		return v.validateAddedFood(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Claim:
		return v.validateClaim(ctx, value, fields...)
	case *models.Claim:
		return v.validateClaim(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DinerValidator) validateOrder(_ context.Context, order models.Order, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFoodID, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if order.ID == "" {
				return ErrEmptyID
			}
		case FieldEmail:
			if order.Email == "" {
				return ErrEmptyEmail
			}
		case FieldFoodID:
			if order.FoodID <= 0 {
				return ErrInvalidFoodID
			}
		case FieldQuantity:
			if order.Quantity < 1 {
				return ErrInvalidQuantity
			}
		case FieldPrice:
			if order.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DinerValidator) validateFoodUpdate(_ context.Context, update models.FoodUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdates, FieldQuantity, FieldOrderCount}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID == "" {
				return ErrEmptyID
			}
		case FieldUpdates:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldQuantity:
			if update.Quantity != nil && *update.Quantity < 0 {
				return ErrNegativeQuantity
			}
		case FieldOrderCount:
			if update.OrderCount != nil && *update.OrderCount < 0 {
				return ErrNegativeCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DinerValidator) validateAddedFood(_ context.Context, food models.AddedFood, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName, FieldPrice, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if food.Email == "" {
				return ErrEmptyEmail
			}
		case FieldName:
			if food.Name == "" {
				return ErrEmptyName
			}
		case FieldPrice:
			if food.Price < 0 {
				return ErrNegativePrice
			}
		case FieldQuantity:
			if food.Quantity < 0 {
				return ErrNegativeQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DinerValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
		case FieldName:
			if user.Name == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DinerValidator) validateClaim(_ context.Context, claim models.Claim, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if claim.Email == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
