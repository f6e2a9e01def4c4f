// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Food is a menu item.
//
// ID is the storage key; FoodID is the application-assigned integer used by
// the client to address the item.
type Food struct {
	ID          string  `json:"_id"`
	FoodID      int64   `json:"foodId"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	OrderCount  int     `json:"orderCount"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	Origin      string  `json:"origin,omitempty"`
	MadeBy      string  `json:"madeBy,omitempty"`
}

// TableName returns the name of the database table
// associated with the Food model.
func (f Food) TableName() string {
	return "foods"
}

// FoodUpdate is a partial update of a [Food].
// Only non-nil fields are written.
type FoodUpdate struct {
	// ID is the storage key of the item to update. Required.
	ID string `json:"-"`

	// Quantity is the new stock quantity.
	Quantity *int `json:"quantity,omitempty"`

	// OrderCount is the new number of times the item has been ordered.
	OrderCount *int `json:"orderCount,omitempty"`
}

// IsEmpty reports whether the update carries no field to write.
func (u FoodUpdate) IsEmpty() bool {
	return u.Quantity == nil && u.OrderCount == nil
}
