package port

import (
	"context"
	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-engine/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)

	// Snapshot joins the owner's items with each product's current name and
	// price and computes the running total. Stock is never part of it.
	Snapshot(ctx context.Context, ownerID string) (domain.CartSnapshot, error)

	// AddItem inserts the item or, when the owner already holds the product,
	// increments the existing row's quantity.
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error

	DeleteItem(ctx context.Context, ownerID string, productID uuid.UUID) (bool, error)

	// Clear removes every item of the owner's cart and reports how many rows
	// were removed. Clearing an empty cart is not an error.
	Clear(ctx context.Context, ownerID string) (int64, error)
}
