package services

import "errors"

// Sentinel errors returned by the services, classified by callers with errors.Is
var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested ID
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when no pizza has the requested ID
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrValidation is returned when a write is rejected before reaching the store
	ErrValidation = errors.New("validation failed")
)
