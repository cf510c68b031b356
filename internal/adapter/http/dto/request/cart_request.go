package request

import (
	"strings"

	"checkout_core/internal/domain/entities"
)

// CartItemRequest is a line item sent by the storefront.
type CartItemRequest struct {
	ProductID         string            `json:"product_id" binding:"required"`
	Name              string            `json:"name"`
	Quantity          int               `json:"quantity" binding:"required,min=1"`
	Price             int64             `json:"price" binding:"min=0"`
	VariantAttributes map[string]string `json:"variant_attributes"`
	VendorID          string            `json:"vendor_id"`
	MaxStock          int               `json:"max_stock" binding:"min=0"`
}

func (r CartItemRequest) ToEntity() entities.CartLineItem {
	return entities.CartLineItem{
		ProductID:         strings.TrimSpace(r.ProductID),
		Name:              strings.TrimSpace(r.Name),
		Quantity:          r.Quantity,
		Price:             r.Price,
		VariantAttributes: variantOrNil(r.VariantAttributes),
		VendorID:          r.VendorID,
		MaxStock:          r.MaxStock,
	}
}

// UpdateCartItemRequest sets the quantity of a line. Zero removes it.
type UpdateCartItemRequest struct {
	Quantity          *int              `json:"quantity" binding:"required,min=0"`
	VariantAttributes map[string]string `json:"variant_attributes"`
}

func (r UpdateCartItemRequest) Variant() entities.VariantAttributes {
	return variantOrNil(r.VariantAttributes)
}

func CartItemsToEntities(items []CartItemRequest) []entities.CartLineItem {
	out := make([]entities.CartLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToEntity())
	}
	return out
}

func variantOrNil(v map[string]string) entities.VariantAttributes {
	if len(v) == 0 {
		return nil
	}
	return entities.VariantAttributes(v)
}

// VariantFromQuery reads variant[key]=value query parameters.
func VariantFromQuery(q map[string]string) entities.VariantAttributes {
	return variantOrNil(q)
}
