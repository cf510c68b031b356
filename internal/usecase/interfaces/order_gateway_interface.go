package interfaces

import (
	"context"

	"checkout_core/internal/domain/entities"
)

// IOrderGateway creates orders on the backend (POST /orders).

type IOrderGateway interface {
	CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error)
}
