package usecase

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing input. State is never changed
// when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports a reference to an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// InsufficientStockError reports a quantity that the item's stock cannot
// cover. AlreadyReserved is the quantity of the same item already held by the
// cart, so Requested exceeds Available-AlreadyReserved.
type InsufficientStockError struct {
	ItemID          string
	Requested       int
	Available       int
	AlreadyReserved int
}

func (e *InsufficientStockError) Error() string {
	if e.AlreadyReserved > 0 {
		return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d, already in cart %d",
			e.ItemID, e.Requested, e.Available, e.AlreadyReserved)
	}
	return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d", e.ItemID, e.Requested, e.Available)
}

// ConflictError reports a uniqueness violation (duplicate code, account number, ...).
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

var (
	ErrInvalidQuantity  = &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	ErrMissingItemID    = &ValidationError{Field: "item_id", Message: "is required"}
	ErrMissingCustomer  = &ValidationError{Field: "customer_id", Message: "is required"}
	ErrCartEmpty        = &ValidationError{Field: "cart", Message: "cart is empty"}
	ErrInvalidBillDate  = &ValidationError{Field: "date", Message: "must be a calendar date (YYYY-MM-DD)"}
	ErrInvalidID        = &ValidationError{Field: "id", Message: "is required"}
	ErrInvalidMonth     = &ValidationError{Field: "month", Message: "must be between 1 and 12"}
	ErrInvalidDateRange = &ValidationError{Field: "range", Message: "start and end must be calendar dates (YYYY-MM-DD)"}
)

func newNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
