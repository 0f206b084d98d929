// Package common defines shared sentinel errors used across the calculator's
// services, storage, and CLI layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound     = errors.New("not found")
	ErrCorruptState = errors.New("stored data is corrupt")

	// Registration / input validation. Services wrap this with a reason,
	// e.g. fmt.Errorf("%w: username too short", common.ErrValidation).
	ErrValidation    = errors.New("validation error")
	ErrUsernameTaken = errors.New("username already exists")

	// Login errors. ErrUnauthorized is deliberately generic: it must not
	// reveal whether the username exists. ErrSubscriptionExpired is a
	// distinct outcome so the caller can route to a renewal flow.
	ErrUnauthorized        = errors.New("invalid username or password")
	ErrSubscriptionExpired = errors.New("subscription expired")

	// Shop errors.
	ErrInsufficientFunds = errors.New("not enough magic points")
	ErrAlreadyOwned      = errors.New("unique item already purchased")
	ErrUnknownItem       = errors.New("unknown shop item")

	// Sorting errors.
	ErrAlreadySorted = errors.New("account has already been sorted")

	// Feature gating.
	ErrFeatureLocked = errors.New("feature not available on current subscription")
)
