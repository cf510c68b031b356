package interfaces

import (
	"context"
	"errors"

	"checkout_core/internal/domain/entities"
)

// ErrPaymentNotFound is returned by GetPaymentStatus when the provider has no payment
// for the order.
var ErrPaymentNotFound = errors.New("payment not found")

// IPaymentGateway processes payments for an existing order.
//
// Implementations: the backend REST client (POST /payments/process,
// GET /payments/status/{order_id}) and the Mercado Pago gateway.
type IPaymentGateway interface {
	ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error)
	GetPaymentStatus(ctx context.Context, orderID string) (entities.PaymentResponse, error)
}

// IPaymentMethodCatalog lists the payment methods enabled on the backend.
type IPaymentMethodCatalog interface {
	ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethodOption, error)
}
