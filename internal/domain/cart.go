package domain

import (
	"github.com/google/uuid"
	"time"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

// CartItem is unique per (owner, product): adding the same product again
// increments Quantity instead of inserting another row.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int32

	CreatedAt time.Time
}

// CartLine is a cart item joined with the product's current name and price.
// Stock is deliberately absent: it is re-checked at checkout, never cached.
type CartLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int32
	UnitPrice Money
	LineTotal Money
}

type CartSnapshot struct {
	OwnerID string
	Lines   []CartLine
	Total   Money
}

func (s CartSnapshot) Empty() bool {
	return len(s.Lines) == 0
}
