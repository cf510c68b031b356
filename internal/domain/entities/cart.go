package entities

import "time"

// VariantAttributes carries the selected variant of a product (e.g. talla, color).
type VariantAttributes map[string]string

// Equal reports whether both variants select the same attributes.
func (v VariantAttributes) Equal(other VariantAttributes) bool {
	if len(v) != len(other) {
		return false
	}
	for k, val := range v {
		if o, ok := other[k]; !ok || o != val {
			return false
		}
	}
	return true
}

// CartLineItem is a product line held in the local cart.
//
// Price is the unit price snapshot (COP, integral) at the time the item was added.
// MaxStock is the last known stock ceiling; zero means unknown. StockAvailable is
// filled by reconciliation for display and is zero for items flagged for removal.
type CartLineItem struct {
	ProductID         string            `json:"product_id"`
	Name              string            `json:"name,omitempty"`
	Quantity          int               `json:"quantity"`
	Price             int64             `json:"price"`
	VariantAttributes VariantAttributes `json:"variant_attributes,omitempty"`
	VendorID          string            `json:"vendor_id,omitempty"`
	MaxStock          int               `json:"max_stock,omitempty"`
	StockAvailable    *int              `json:"stock_available,omitempty"`
	AddedAt           time.Time         `json:"added_at,omitempty"`
}

// LineTotal is price x quantity.
func (i CartLineItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// SameLine reports whether two items refer to the same product and variant.
func (i CartLineItem) SameLine(other CartLineItem) bool {
	return i.ProductID == other.ProductID && i.VariantAttributes.Equal(other.VariantAttributes)
}

// CountUnits returns the aggregate unit count of the cart.
func CountUnits(items []CartLineItem) int {
	n := 0
	for _, it := range items {
		if it.Quantity > 0 {
			n += it.Quantity
		}
	}
	return n
}
