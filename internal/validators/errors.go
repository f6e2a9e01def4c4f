package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyID          = errors.New("id is required")
	ErrInvalidFoodID    = errors.New("invalid food id")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativeCount    = errors.New("order count cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
