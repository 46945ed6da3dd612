package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nikolayk812/checkout-engine/internal/domain"
	"github.com/nikolayk812/checkout-engine/internal/port"
	"github.com/sirupsen/logrus"
)

// CheckoutService converts a cart into a committed order or rejects it
// without side effects. It never partially decrements stock: the reserve
// step is all-or-nothing across the whole line-item set.
type CheckoutService struct {
	carts     port.CartRepository
	inventory port.InventoryRepository
	log       logrus.FieldLogger
}

func NewCheckout(carts port.CartRepository, inventory port.InventoryRepository, log logrus.FieldLogger) *CheckoutService {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &CheckoutService{
		carts:     carts,
		inventory: inventory,
		log:       log,
	}
}

// Checkout loads the cart snapshot, reserves and decrements stock for every
// line as one unit, then clears the cart. Prices on the returned receipt are
// the ones read before the decrement.
//
// A failed cart clear after a committed decrement returns
// domain.InconsistencyError together with the receipt: stock was honestly
// decremented, and re-running Checkout would decrement it twice. Only the
// cart clear may be retried for that owner.
func (s *CheckoutService) Checkout(ctx context.Context, ownerID string) (domain.Receipt, error) {
	snapshot, err := s.carts.Snapshot(ctx, ownerID)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("carts.Snapshot: %w", err)
	}

	if snapshot.Empty() {
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	requests := make([]domain.StockRequest, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		requests = append(requests, domain.StockRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if err := s.inventory.ReserveAndDecrement(ctx, requests); err != nil {
		return domain.Receipt{}, fmt.Errorf("inventory.ReserveAndDecrement: %w", err)
	}

	receipt := domain.Receipt{
		OwnerID:  ownerID,
		Lines:    snapshot.Lines,
		Total:    snapshot.Total,
		PlacedAt: time.Now().UTC(),
	}

	if _, err := s.carts.Clear(ctx, ownerID); err != nil {
		s.log.WithFields(logrus.Fields{
			"owner_id": ownerID,
			"lines":    len(receipt.Lines),
			"total":    receipt.Total.Amount.String(),
		}).WithError(err).Error("stock decremented but cart clear failed, reconcile manually")

		return receipt, domain.InconsistencyError{
			OwnerID: ownerID,
			Receipt: receipt,
			Err:     err,
		}
	}

	s.log.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"lines":    len(receipt.Lines),
		"total":    receipt.Total.Amount.String(),
	}).Info("checkout committed")

	return receipt, nil
}
