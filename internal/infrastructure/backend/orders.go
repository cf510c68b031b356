package backend

import (
	"context"
	"net/http"
	"strings"

	"checkout_core/internal/domain/entities"
	"checkout_core/pkg/logger"

	"go.uber.org/zap"
)

type orderItemPayload struct {
	ProductID         string            `json:"product_id"`
	Quantity          int               `json:"quantity"`
	VariantAttributes map[string]string `json:"variant_attributes,omitempty"`
}

type createOrderPayload struct {
	Items              []orderItemPayload `json:"items"`
	ShippingName       string             `json:"shipping_name"`
	ShippingPhone      string             `json:"shipping_phone"`
	ShippingAddress    string             `json:"shipping_address"`
	ShippingCity       string             `json:"shipping_city"`
	ShippingDepartment string             `json:"shipping_department"`
	ShippingPostalCode string             `json:"shipping_postal_code,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	BillingNIT         string             `json:"billing_nit,omitempty"`
}

type orderPayload struct {
	ID          flexString `json:"id"`
	OrderNumber string     `json:"order_number"`
	Status      string     `json:"status"`
	Total       flexAmount `json:"total_amount"`
	TotalAlt    flexAmount `json:"total"`
}

func (p orderPayload) toEntity() entities.Order {
	total := p.Total
	if total == 0 {
		total = p.TotalAlt
	}
	return entities.Order{
		ID:          strings.TrimSpace(string(p.ID)),
		OrderNumber: p.OrderNumber,
		Status:      p.Status,
		Total:       int64(total),
	}
}

// CreateOrder calls POST /orders.
func (c *Client) CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error) {
	body := createOrderPayload{
		Items:              make([]orderItemPayload, 0, len(req.Items)),
		ShippingName:       req.Shipping.Name,
		ShippingPhone:      req.Shipping.Phone,
		ShippingAddress:    req.Shipping.Address,
		ShippingCity:       req.Shipping.City,
		ShippingDepartment: req.Shipping.Department,
		ShippingPostalCode: req.Shipping.PostalCode,
		Notes:              req.Notes,
		BillingNIT:         req.BillingNIT,
	}
	for _, it := range req.Items {
		body.Items = append(body.Items, orderItemPayload{
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			VariantAttributes: it.VariantAttributes,
		})
	}

	var payload orderPayload
	if err := c.do(ctx, http.MethodPost, []string{"orders"}, nil, body, &payload, requestOptions{idempotent: true}); err != nil {
		return entities.Order{}, err
	}
	order := payload.toEntity()
	logger.Debug(ctx, "[backend][orders] order created", zap.String("order_id", order.ID), zap.String("status", order.Status))
	return order, nil
}
