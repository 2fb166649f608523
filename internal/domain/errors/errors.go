package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrStatusNotAllowed   = errors.New("status change not allowed")
	ErrOrderFinalized     = errors.New("finalized orders cannot be updated")
	ErrInvalidReference   = errors.New("invalid product reference")
	ErrIncompleteProfile  = errors.New("delivery profile is incomplete")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
)
