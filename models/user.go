// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a stored user record.
// Users are created by the client after its first login and looked up by email.
type User struct {
	// ID is the storage key of the user.
	ID string `json:"_id"`

	// Email is the unique user identifier, equal to [Claim.Email].
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// PhotoURL is the avatar URL of the user.
	PhotoURL string `json:"photoURL,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
