package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"
)

type productPayload struct {
	ID            flexString `json:"id"`
	Name          string     `json:"name"`
	Price         flexAmount `json:"price"`
	StockQuantity int        `json:"stock_quantity"`
	Estado        string     `json:"estado"`
	Status        string     `json:"status"`
	VendorID      flexString `json:"vendor_id"`
}

func (p productPayload) toEntity() entities.Product {
	status := p.Estado
	if status == "" {
		status = p.Status
	}
	return entities.Product{
		ID:            strings.TrimSpace(string(p.ID)),
		Name:          strings.TrimSpace(p.Name),
		Price:         int64(p.Price),
		StockQuantity: p.StockQuantity,
		Status:        entities.ApprovalStatus(strings.ToLower(strings.TrimSpace(status))),
		VendorID:      string(p.VendorID),
	}
}

// GetProduct calls GET /products/{id}. A 404 is reported as interfaces.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, interfaces.ErrProductNotFound
	}

	var payload productPayload
	err := c.do(ctx, http.MethodGet, []string{"products", productID}, nil, nil, &payload, requestOptions{})
	var be *interfaces.BackendError
	if errors.As(err, &be) && be.StatusCode == http.StatusNotFound {
		return entities.Product{}, interfaces.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, err
	}
	return payload.toEntity(), nil
}
