package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-engine/internal/domain"
	"github.com/nikolayk812/checkout-engine/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("product ID is empty")
	}
	if product.Name == "" {
		return fmt.Errorf("product name is empty")
	}
	if product.Price.Amount.IsNegative() {
		return fmt.Errorf("product price is negative")
	}
	if product.Stock < 0 {
		return fmt.Errorf("product stock is negative")
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (id, name, price_amount, price_currency, stock)
		 VALUES ($1, $2, $3, $4, $5)`,
		product.ID, product.Name, product.Price.Amount, product.Price.Currency.String(), product.Stock)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var (
		product      domain.Product
		amount       decimal.Decimal
		currencyCode string
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, price_amount, price_currency, stock, created_at
		 FROM products WHERE id = $1`, productID).
		Scan(&product.ID, &product.Name, &amount, &currencyCode, &product.Stock, &product.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %s: %w", productID, domain.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("pool.QueryRow: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}
	product.Price = domain.Money{Amount: amount, Currency: parsedCurrency}

	return product, nil
}

func (r *productRepository) Exists(ctx context.Context, productID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return exists, nil
}
