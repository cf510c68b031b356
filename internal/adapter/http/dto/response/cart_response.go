package response

import (
	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase"
)

type CartItemResponse struct {
	ProductID         string            `json:"product_id"`
	Name              string            `json:"name,omitempty"`
	Quantity          int               `json:"quantity"`
	Price             int64             `json:"price"`
	LineTotal         int64             `json:"line_total"`
	VariantAttributes map[string]string `json:"variant_attributes,omitempty"`
	VendorID          string            `json:"vendor_id,omitempty"`
	MaxStock          int               `json:"max_stock,omitempty"`
	StockAvailable    *int              `json:"stock_available,omitempty"`
}

type CartResponse struct {
	CartID       string                     `json:"cart_id"`
	Items        []CartItemResponse         `json:"items"`
	ItemCount    int                        `json:"item_count"`
	Totals       entities.CartTotals        `json:"totals"`
	Shipping     entities.ShippingQuote     `json:"shipping"`
	MinimumOrder entities.MinimumOrderCheck `json:"minimum_order"`
}

type CartItemsResponse struct {
	CartID    string             `json:"cart_id"`
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
}

type CartTotalsResponse struct {
	Totals       entities.CartTotals        `json:"totals"`
	Shipping     entities.ShippingQuote     `json:"shipping"`
	MinimumOrder entities.MinimumOrderCheck `json:"minimum_order"`
	Formatted    FormattedTotals            `json:"formatted"`
}

// FormattedTotals carries display strings such as "$169.700".
type FormattedTotals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

type ReconciliationResponse struct {
	Valid        bool                           `json:"valid"`
	Errors       []entities.ReconciliationIssue `json:"errors"`
	Warnings     []entities.ReconciliationIssue `json:"warnings"`
	UpdatedItems []CartItemResponse             `json:"updated_items"`
}

func FromCartItem(it entities.CartLineItem) CartItemResponse {
	return CartItemResponse{
		ProductID:         it.ProductID,
		Name:              it.Name,
		Quantity:          it.Quantity,
		Price:             it.Price,
		LineTotal:         it.LineTotal(),
		VariantAttributes: it.VariantAttributes,
		VendorID:          it.VendorID,
		MaxStock:          it.MaxStock,
		StockAvailable:    it.StockAvailable,
	}
}

func FromCartItems(items []entities.CartLineItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCartItem(it))
	}
	return out
}

func FromCartSummary(s usecase.CartSummary) CartResponse {
	return CartResponse{
		CartID:       s.CartID,
		Items:        FromCartItems(s.Items),
		ItemCount:    s.ItemCount,
		Totals:       s.Totals,
		Shipping:     s.Shipping,
		MinimumOrder: s.MinimumOrder,
	}
}

func NewCartItemsResponse(cartID string, items []entities.CartLineItem) CartItemsResponse {
	return CartItemsResponse{CartID: cartID, Items: FromCartItems(items), ItemCount: entities.CountUnits(items)}
}

func TotalsFromCartSummary(s usecase.CartSummary) CartTotalsResponse {
	return CartTotalsResponse{
		Totals:       s.Totals,
		Shipping:     s.Shipping,
		MinimumOrder: s.MinimumOrder,
		Formatted: FormattedTotals{
			Subtotal: usecase.FormatCOP(s.Totals.Subtotal),
			Tax:      usecase.FormatCOP(s.Totals.Tax),
			Shipping: usecase.FormatCOP(s.Totals.Shipping),
			Total:    usecase.FormatCOP(s.Totals.Total),
		},
	}
}

func FromReconciliation(r entities.ReconciliationResult) ReconciliationResponse {
	errs, warns := r.Errors, r.Warnings
	if errs == nil {
		errs = []entities.ReconciliationIssue{}
	}
	if warns == nil {
		warns = []entities.ReconciliationIssue{}
	}
	return ReconciliationResponse{
		Valid:        r.Valid,
		Errors:       errs,
		Warnings:     warns,
		UpdatedItems: FromCartItems(r.UpdatedItems),
	}
}
