package service

import (
	"github.com/MKhiriev/go-diner/internal/config"
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/sequencer"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/models"
)

type Services struct {
	AuthService      AuthService
	FoodService      FoodService
	OrderService     OrderService
	UserService      UserService
	AddedFoodService AddedFoodService
	AppInfoService   AppInfoService
}

func NewServices(
	storages *store.Storages,
	seq sequencer.Sequencer,
	metrics OrderMetrics,
	buildInfo models.AppBuildInfo,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		FoodService:      NewFoodService(storages.FoodRepository, logger),
		OrderService:     NewOrderService(storages.OrderRepository, storages.FoodRepository, seq, metrics, logger),
		UserService:      NewUserService(storages.UserRepository, logger),
		AddedFoodService: NewAddedFoodService(storages.AddedFoodRepository, logger),
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}
}
