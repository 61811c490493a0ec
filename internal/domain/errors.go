package domain

import "errors"

var (
	// Draft validation errors
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidCategory  = errors.New("invalid category")

	// Gateway errors
	ErrExpenseNotFound = errors.New("expense not found")
	ErrGatewayFailure  = errors.New("storage gateway request failed")
)
