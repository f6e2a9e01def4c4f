package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload misses a
	// required field or carries an invalid value.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrForbidden is returned when an authenticated caller requests data
	// scoped to another identity.
	ErrForbidden = errors.New("forbidden")

	// ErrTokenCreationFailed is returned when a session token cannot be
	// issued.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any session token that does
	// not verify. The specific cause is logged, never returned to clients.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrOrderNotPlaced is returned when the sequence number or the stock
	// update of an order placement fails.
	ErrOrderNotPlaced = errors.New("order was not placed")
)
