// Package services defines the business logic for bill lookups, payments,
// and transaction history. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer. The taxonomy is three-way: caller errors
// (missing/malformed input), normal negative results (not found), and
// everything else, which surfaces as an opaque internal error.
package services

import "errors"

// Caller errors, detected before any storage access.
var (
	// ErrMissingField is returned when a required request field is empty.
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidBillKind is returned when a bill lookup names a kind outside
	// the closed electricity/water set.
	ErrInvalidBillKind = errors.New("unknown bill kind")

	// ErrInvalidAmount is returned when a payment amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrUnknownService is returned when a payment names a service outside
	// Electricity, Water, and Gas.
	ErrUnknownService = errors.New("unknown service")

	// ErrInvalidSort is returned when a history request names a sort column
	// or direction outside the supported set.
	ErrInvalidSort = errors.New("invalid sort parameters")
)

// Normal negative results.
var (
	// ErrBillNotFound indicates no bill matches the (consumerId, phone)
	// identity in the requested kind's table.
	ErrBillNotFound = errors.New("bill not found")

	// ErrGasNotFound indicates no gas booking record exists for the phone.
	ErrGasNotFound = errors.New("gas details not found")
)
