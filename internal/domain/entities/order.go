package entities

// ShippingAddress is the delivery address submitted with the order.
type ShippingAddress struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Department string `json:"department"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Destination returns the part of the address used by the shipping heuristic.
func (a ShippingAddress) Destination() ShippingDestination {
	return ShippingDestination{City: a.City, Department: a.Department}
}

// OrderItem is a line of the order creation request.
type OrderItem struct {
	ProductID         string            `json:"product_id"`
	Quantity          int               `json:"quantity"`
	VariantAttributes VariantAttributes `json:"variant_attributes,omitempty"`
}

// OrderRequest is submitted to the order creation endpoint.
//
// BillingNIT is set when the buyer asks for an invoice issued to a company.
type OrderRequest struct {
	Items      []OrderItem
	Shipping   ShippingAddress
	Notes      string
	BillingNIT string
}

// Order is the order created by the backend.
type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
}

// OrderItemsFromCart maps cart lines to order lines.
func OrderItemsFromCart(items []CartLineItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItem{
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			VariantAttributes: it.VariantAttributes,
		})
	}
	return out
}
