package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")
	ErrInsufficientStock  = errors.New("insufficient stock")

	// Billing session errors.
	ErrCartEmpty           = errors.New("cart is empty")
	ErrMissingCustomer     = errors.New("customer name and phone are required")
	ErrInvalidPhone        = errors.New("invalid phone number: must be 10 digits starting with 6, 7, 8, or 9")
	ErrEmailRequired       = errors.New("customer email is required to send the invoice")
	ErrGenerationInFlight  = errors.New("an invoice generation is already in progress")
	ErrInvalidSessionState = errors.New("operation not allowed in current session state")

	// Invoice template errors.
	ErrMalformedMapping = errors.New("malformed template mapping")
)
