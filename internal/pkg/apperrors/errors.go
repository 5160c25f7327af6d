// internal/pkg/apperrors/errors.go
package apperrors

import "errors"

// Sentinel errors shared across domain services. Handlers branch on these with
// errors.Is to choose a response status; services wrap them with fmt.Errorf and
// %w to add context.
var (
	// ErrInvalidInput indicates malformed arguments: non-positive guest count,
	// negative quantity, empty delivery address. State is left unchanged.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientBalance indicates a cashback redemption exceeding the
	// derived balance. Nothing is recorded on this failure.
	ErrInsufficientBalance = errors.New("insufficient cashback balance")

	// ErrNotFound indicates a referenced order or contact is absent from the
	// available data.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable indicates the CRM gateway or session provider is
	// unreachable or not configured.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
