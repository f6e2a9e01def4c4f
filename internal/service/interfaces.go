package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/models"
)

// AuthService issues and verifies session tokens.
type AuthService interface {
	CreateToken(ctx context.Context, claim models.Claim) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claim, error)
}

// FoodService serves the food catalogue.
type FoodService interface {
	ListFoods(ctx context.Context, spec query.Spec) ([]models.Food, error)
	GetFood(ctx context.Context, foodID int64) (models.Food, error)
	UpdateFood(ctx context.Context, update models.FoodUpdate) (models.Food, error)
	CountFoods(ctx context.Context) (int64, error)
}

// OrderService places, lists and deletes orders of the authenticated user.
type OrderService interface {
	PlaceOrder(ctx context.Context, claim models.Claim, order models.Order) (models.Order, error)
	ListOrders(ctx context.Context, claim models.Claim, email string, spec query.Spec) ([]models.Order, error)
	DeleteOrder(ctx context.Context, claim models.Claim, id string) (int64, error)
}

// UserService manages user records.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, claim models.Claim, email string) (models.User, error)
}

// AddedFoodService manages food submissions of users.
type AddedFoodService interface {
	AddFood(ctx context.Context, claim models.Claim, food models.AddedFood) (models.AddedFood, error)
	ListAddedFoods(ctx context.Context, claim models.Claim, email string, spec query.Spec) ([]models.AddedFood, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// OrderMetrics receives a notification for every placed order.
type OrderMetrics interface {
	OrderPlaced(category string)
}
