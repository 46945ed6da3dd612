package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product's Stock is mutated only through the inventory repository's
// ReserveAndDecrement and Restock operations.
type Product struct {
	ID    uuid.UUID
	Name  string
	Price Money
	Stock int32

	CreatedAt time.Time
}

// StockRequest is one (product, quantity) pair of a checkout's
// all-or-nothing decrement batch.
type StockRequest struct {
	ProductID uuid.UUID
	Quantity  int32
}

// Shortfall reports how far a stock request exceeded the available stock.
type Shortfall struct {
	ProductID uuid.UUID
	Requested int32
	Available int32
}

// ShortBy is the quantity the caller would have to drop for the request to fit.
func (s Shortfall) ShortBy() int32 {
	return s.Requested - s.Available
}
