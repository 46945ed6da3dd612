package port

import (
	"context"
	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-engine/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	Exists(ctx context.Context, productID uuid.UUID) (bool, error)
}
