package interfaces

import (
	"context"
	"errors"

	"checkout_core/internal/domain/entities"
)

// ErrProductNotFound is returned by catalogs when the backend has no such product.
var ErrProductNotFound = errors.New("product not found")

// IProductCatalog reads authoritative product state (GET /products/{id}).
type IProductCatalog interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
}
