// Package errs defines the domain error taxonomy and its mapping to HTTP
// status codes. Services return these; the HTTP boundary translates them.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced entity that is absent or not owned by
// the caller. Ownership mismatches deliberately look identical to absence.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NotFound builds a NotFoundError for the named resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// InsufficientStockError reports a requested quantity above live stock,
// naming the offending product.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s", e.ProductName)
}

// InsufficientStock builds an InsufficientStockError.
func InsufficientStock(productName string) error {
	return &InsufficientStockError{ProductName: productName}
}

// EmptyCartError reports a checkout attempt on an empty cart.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string { return "cart is empty" }

// EmptyCart builds an EmptyCartError.
func EmptyCart() error { return &EmptyCartError{} }

// InvalidStateError reports an operation illegal in the entity's current
// state, e.g. cancelling a shipped order.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

// InvalidState builds an InvalidStateError from a format string.
func InvalidState(format string, args ...interface{}) error {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}

// AuthError reports an authentication failure. Status is 401 when no
// credential was presented and 403 when the credential was rejected.
type AuthError struct {
	Message string
	Status  int
}

func (e *AuthError) Error() string { return e.Message }

// Unauthorized builds a 401 AuthError.
func Unauthorized(message string) error {
	return &AuthError{Message: message, Status: http.StatusUnauthorized}
}

// Forbidden builds a 403 AuthError.
func Forbidden(message string) error {
	return &AuthError{Message: message, Status: http.StatusForbidden}
}

// HTTPStatus maps a domain error to its HTTP status code. Unknown errors
// map to 500.
func HTTPStatus(err error) int {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Status
	}
	var (
		validation *ValidationError
		notFound   *NotFoundError
		stock      *InsufficientStockError
		emptyCart  *EmptyCartError
		state      *InvalidStateError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &stock),
		errors.As(err, &emptyCart), errors.As(err, &state):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
