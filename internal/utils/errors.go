package utils

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors used across services.
var (
	ErrDuplicateBarcode   = errors.New("DUPLICATE_BARCODE")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
)

// ValidationError aggregates per-field validation failures for one submission.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError returns the *ValidationError wrapped in err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
