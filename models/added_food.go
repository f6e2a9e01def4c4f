// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AddedFood is a food item submitted by a user through POST /add-food.
// Submissions are kept apart from the menu and listed per submitter.
type AddedFood struct {
	ID          string    `json:"_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	Origin      string    `json:"origin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the AddedFood model.
func (a AddedFood) TableName() string {
	return "added_foods"
}
