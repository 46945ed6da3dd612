package port

import (
	"context"
	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-engine/internal/domain"
)

type InventoryRepository interface {
	// ReserveAndDecrement verifies stock for every request and, only when all
	// of them pass, decrements every product's stock in one transaction.
	// On any shortfall it returns domain.InsufficientStockError and leaves
	// all stock untouched. Partial decrements never happen.
	ReserveAndDecrement(ctx context.Context, requests []domain.StockRequest) error

	// Restock increases a product's stock and returns the new level.
	Restock(ctx context.Context, productID uuid.UUID, quantity int32) (int32, error)

	GetStock(ctx context.Context, productID uuid.UUID) (int32, error)
}
