package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("item not found in menu")
	ErrLineNotFound    = errors.New("item not found in cart")
	ErrEmptyCart       = errors.New("cart is empty")
)

// ValidationError marks client-correctable input problems (missing fields).
// Distinct from ErrUnsupportedPaymentMethod, which is a fixed-set rejection.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

// storeErr wraps any document-store failure. No retry, no reconciliation;
// the handler boundary turns it into a generic 500.
func storeErr(op string, err error) error {
	return fmt.Errorf("cart store %s: %w", op, err)
}
