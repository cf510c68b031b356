package interfaces

import (
	"context"

	"checkout_core/internal/domain/entities"
)

// ICheckoutAttemptRepository persists the checkout attempt ledger.
//
// GetByID returns a zero-value attempt (empty ID) when nothing is stored.

type ICheckoutAttemptRepository interface {
	Save(ctx context.Context, a entities.CheckoutAttempt) error
	GetByID(ctx context.Context, id string) (entities.CheckoutAttempt, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.CheckoutAttempt, error)
}
