package shop

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email already in
	// use, compared case-insensitively.
	ErrEmailTaken = errors.New("shopfront: email already registered")

	// ErrInvalidCredentials is returned when no user matches the given
	// email and password pair.
	ErrInvalidCredentials = errors.New("shopfront: invalid credentials")

	// ErrNotFound is returned when an update or lookup targets a missing
	// product or cart item identifier.
	ErrNotFound = errors.New("shopfront: record not found")

	// ErrInvalidPrice is returned when price input does not parse as a
	// finite non-negative number.
	ErrInvalidPrice = errors.New("shopfront: invalid price")

	// ErrCartEmpty is returned when checking out an empty cart.
	ErrCartEmpty = errors.New("shopfront: cart is empty")
)
