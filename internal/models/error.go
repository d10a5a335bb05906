package models

import "fmt"

// Messages returned in error bodies
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
)

// ValidationError reports an attribute that violates its domain constraint
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ErrorResponse represents a single error returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse represents the error list returned when a request fails validation
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a new single error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates the generic validation error response.
// The reason behind the failure is not exposed to clients.
func NewValidationErrorResponse() ValidationErrorResponse {
	return ValidationErrorResponse{Errors: []string{MsgValidationErrors}}
}
