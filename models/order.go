// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Order is a placed order of a single food item.
type Order struct {
	// ID is the storage key assigned when the order is inserted.
	ID string `json:"_id"`

	// Email is the owner of the order.
	Email string `json:"email"`

	// FoodID references [Food.FoodID].
	FoodID int64 `json:"foodId"`

	// FoodName is a snapshot of the food name at order time.
	FoodName string `json:"foodName,omitempty"`

	// Price is a snapshot of the food price at order time.
	Price float64 `json:"price"`

	// Quantity is the quantity requested by the client.
	Quantity int `json:"quantity"`

	// OrderCount is the sequence stamp assigned by the order sequencer.
	OrderCount int64 `json:"orderCount"`

	// OrderedAt is the server time the order was placed.
	OrderedAt time.Time `json:"orderedAt"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
