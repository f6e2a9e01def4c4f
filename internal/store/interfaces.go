package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/models"
)

// FoodRepository reads and updates the food catalogue.
type FoodRepository interface {
	ListFoods(ctx context.Context, spec query.Spec) ([]models.Food, error)
	GetFoodByFoodID(ctx context.Context, foodID int64) (models.Food, error)
	UpdateFood(ctx context.Context, update models.FoodUpdate) (models.Food, error)
	CountFoods(ctx context.Context) (int64, error)
}

// OrderRepository stores placed orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	ListOrders(ctx context.Context, spec query.Spec) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id string) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) (int64, error)
}

// UserRepository stores user records keyed by email.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AddedFoodRepository stores food submissions made by users.
type AddedFoodRepository interface {
	CreateAddedFood(ctx context.Context, food models.AddedFood) (models.AddedFood, error)
	ListAddedFoods(ctx context.Context, spec query.Spec) ([]models.AddedFood, error)
}

// IDGenerator produces storage identifiers for new records.
type IDGenerator interface {
	Generate() string
}
