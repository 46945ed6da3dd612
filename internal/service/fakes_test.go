package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-engine/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeCartRepo struct {
	snapshot    domain.CartSnapshot
	snapshotErr error

	addErr     error
	added      []domain.CartItem
	deleteOK   bool
	deleteErr  error
	clearErr   error
	clearCalls int
	cleared    int64
}

func (f *fakeCartRepo) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	return domain.Cart{OwnerID: ownerID}, nil
}

func (f *fakeCartRepo) Snapshot(_ context.Context, _ string) (domain.CartSnapshot, error) {
	return f.snapshot, f.snapshotErr
}

func (f *fakeCartRepo) AddItem(_ context.Context, _ string, item domain.CartItem) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, item)
	return nil
}

func (f *fakeCartRepo) DeleteItem(_ context.Context, _ string, _ uuid.UUID) (bool, error) {
	return f.deleteOK, f.deleteErr
}

func (f *fakeCartRepo) Clear(_ context.Context, _ string) (int64, error) {
	f.clearCalls++
	if f.clearErr != nil {
		return 0, f.clearErr
	}
	return f.cleared, nil
}

type fakeInventoryRepo struct {
	reserveErr error
	batches    [][]domain.StockRequest
}

func (f *fakeInventoryRepo) ReserveAndDecrement(_ context.Context, requests []domain.StockRequest) error {
	if f.reserveErr != nil {
		return f.reserveErr
	}
	f.batches = append(f.batches, requests)
	return nil
}

func (f *fakeInventoryRepo) Restock(_ context.Context, _ uuid.UUID, _ int32) (int32, error) {
	return 0, nil
}

func (f *fakeInventoryRepo) GetStock(_ context.Context, _ uuid.UUID) (int32, error) {
	return 0, nil
}

type fakeProductRepo struct {
	exists    bool
	existsErr error
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, _ domain.Product) error {
	return nil
}

func (f *fakeProductRepo) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	return domain.Product{ID: productID}, nil
}

func (f *fakeProductRepo) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.exists, f.existsErr
}

func usd(amount int64) domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: currency.USD,
	}
}

func snapshotWithLines(ownerID string, lines ...domain.CartLine) domain.CartSnapshot {
	total := domain.Money{Amount: decimal.Zero, Currency: currency.USD}
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return domain.CartSnapshot{
		OwnerID: ownerID,
		Lines:   lines,
		Total:   total,
	}
}

func line(quantity int32, unitPrice int64) domain.CartLine {
	price := usd(unitPrice)
	return domain.CartLine{
		ProductID: uuid.New(),
		Name:      "product",
		Quantity:  quantity,
		UnitPrice: price,
		LineTotal: price.Mul(quantity),
	}
}
