package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-engine/internal/domain"
	"github.com/nikolayk812/checkout-engine/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, quantity, created_at
		 FROM cart_items
		 WHERE owner_id = $1
		 ORDER BY created_at, product_id`, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("pool.Query: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CartItem, error) {
		var item domain.CartItem
		err := row.Scan(&item.ProductID, &item.Quantity, &item.CreatedAt)
		return item, err
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

func (r *cartRepository) Snapshot(ctx context.Context, ownerID string) (domain.CartSnapshot, error) {
	if ownerID == "" {
		return domain.CartSnapshot{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ci.product_id, p.name, ci.quantity, p.price_amount, p.price_currency
		 FROM cart_items ci
		 JOIN products p ON p.id = ci.product_id
		 WHERE ci.owner_id = $1
		 ORDER BY ci.created_at, ci.product_id`, ownerID)
	if err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("pool.Query: %w", err)
	}

	lines, err := pgx.CollectRows(rows, mapSnapshotRowToDomain)
	if err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	var total domain.Money
	for i, line := range lines {
		if i == 0 {
			total.Currency = line.UnitPrice.Currency
		}
		total = total.Add(line.LineTotal)
	}

	return domain.CartSnapshot{
		OwnerID: ownerID,
		Lines:   lines,
		Total:   total,
	}, nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, item domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO cart_items (owner_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (owner_id, product_id)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
		               updated_at = NOW()`,
		ownerID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, productID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE owner_id = $1 AND product_id = $2`,
		ownerID, productID)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *cartRepository) Clear(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected(), nil
}

func mapSnapshotRowToDomain(row pgx.CollectableRow) (domain.CartLine, error) {
	var (
		line         domain.CartLine
		amount       decimal.Decimal
		currencyCode string
	)

	if err := row.Scan(&line.ProductID, &line.Name, &line.Quantity, &amount, &currencyCode); err != nil {
		return domain.CartLine{}, fmt.Errorf("row.Scan: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	line.UnitPrice = domain.Money{Amount: amount, Currency: parsedCurrency}
	line.LineTotal = line.UnitPrice.Mul(line.Quantity)

	return line, nil
}
