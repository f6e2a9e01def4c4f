// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CountResponse is the body of GET /foodsCount.
type CountResponse struct {
	// Count is the approximate number of stored food items.
	Count int64 `json:"count"`
}

// AuthResponse is the body returned by POST /jwt and POST /logout.
type AuthResponse struct {
	Success bool `json:"success"`
}

// DeleteResponse is the body returned by DELETE endpoints.
type DeleteResponse struct {
	// DeletedCount is the number of removed records (0 or 1).
	DeletedCount int64 `json:"deletedCount"`
}
