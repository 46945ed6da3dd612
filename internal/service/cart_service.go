package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-engine/internal/domain"
	"github.com/nikolayk812/checkout-engine/internal/port"
)

// CartService maintains each owner's line items independently of inventory
// state. Adding an item never reserves or locks stock; only checkout pays
// the cost of inventory coordination.
type CartService struct {
	carts    port.CartRepository
	products port.ProductRepository
}

func NewCart(carts port.CartRepository, products port.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// Reset removes every item of the owner's cart and returns how many items
// were removed. Resetting an already empty cart returns 0.
func (s *CartService) Reset(ctx context.Context, ownerID string) (int64, error) {
	removed, err := s.carts.Clear(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("carts.Clear: %w", err)
	}

	return removed, nil
}

// AddItem checks the product exists, then inserts the line item or increments
// the existing one. The existence check does not look at stock.
func (s *CartService) AddItem(ctx context.Context, ownerID string, productID uuid.UUID, quantity int32) error {
	if quantity < 1 {
		return fmt.Errorf("quantity %d: %w", quantity, domain.ErrInvalidQuantity)
	}

	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return fmt.Errorf("products.Exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("product %s: %w", productID, domain.ErrProductNotFound)
	}

	err = s.carts.AddItem(ctx, ownerID, domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return fmt.Errorf("carts.AddItem: %w", err)
	}

	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, ownerID string, productID uuid.UUID) error {
	deleted, err := s.carts.DeleteItem(ctx, ownerID, productID)
	if err != nil {
		return fmt.Errorf("carts.DeleteItem: %w", err)
	}
	if !deleted {
		return fmt.Errorf("product %s: %w", productID, domain.ErrItemNotFound)
	}

	return nil
}

// List returns the owner's items joined with each product's current name and
// price, plus the computed total.
func (s *CartService) List(ctx context.Context, ownerID string) (domain.CartSnapshot, error) {
	snapshot, err := s.carts.Snapshot(ctx, ownerID)
	if err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("carts.Snapshot: %w", err)
	}

	return snapshot, nil
}
