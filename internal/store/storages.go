package store

import (
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/utils"
)

// Storages aggregates every repository backed by a single [DB].
type Storages struct {
	FoodRepository      FoodRepository
	OrderRepository     OrderRepository
	UserRepository      UserRepository
	AddedFoodRepository AddedFoodRepository
}

// NewStorages wires all repositories to db. Storage ids are UUID v7.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		FoodRepository:      NewFoodRepository(db, log),
		OrderRepository:     NewOrderRepository(db, ids, log),
		UserRepository:      NewUserRepository(db, ids, log),
		AddedFoodRepository: NewAddedFoodRepository(db, ids, log),
	}
}
