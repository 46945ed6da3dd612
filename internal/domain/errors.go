package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrConflict indicates the storage layer aborted the batch because of a
	// concurrent writer. No stock was mutated; the caller may retry.
	ErrConflict = errors.New("conflicting concurrent update")
)

// InsufficientStockError carries one Shortfall per product that could not be
// covered, so the caller can adjust quantities without re-submitting blind.
// The ledger guarantees no stock was mutated when this error is returned.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%s short by %d", s.ProductID, s.ShortBy()))
	}
	return "insufficient stock: " + strings.Join(parts, ", ")
}

// InconsistencyError reports the one non-atomic seam of a checkout: the stock
// decrement committed but the cart clear failed afterwards. The decrement must
// never be re-run; only the cart clear is safe to retry. Receipt holds the
// order that was honestly charged.
type InconsistencyError struct {
	OwnerID string
	Receipt Receipt
	Err     error
}

func (e InconsistencyError) Error() string {
	return fmt.Sprintf("stock decremented but cart clear failed for owner %s: %v", e.OwnerID, e.Err)
}

func (e InconsistencyError) Unwrap() error {
	return e.Err
}
