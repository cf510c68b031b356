package entities

// ApprovalStatus is the backend moderation state of a vendor product.
type ApprovalStatus string

const (
	ApprovalStatusPendiente ApprovalStatus = "pendiente"
	ApprovalStatusAprobado  ApprovalStatus = "aprobado"
	ApprovalStatusRechazado ApprovalStatus = "rechazado"
)

// Product is the authoritative product record returned by the backend.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         int64          `json:"price"`
	StockQuantity int            `json:"stock_quantity"`
	Status        ApprovalStatus `json:"estado"`
	VendorID      string         `json:"vendor_id"`
}

// IsPurchasable reports whether the product can be sold at all.
func (p Product) IsPurchasable() bool {
	return p.Status == ApprovalStatusAprobado
}
