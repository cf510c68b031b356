package entities

// All amounts are Colombian pesos. COP has no fractional unit in practice, so every
// amount is an integer.

// CartTotals is the money breakdown of a cart. Total = Subtotal + Tax - Discount + Shipping.
type CartTotals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
}

// ShippingDestination is the address part that drives the shipping heuristic.
type ShippingDestination struct {
	City       string `json:"city"`
	Department string `json:"department"`
}

// ShippingQuote is the computed shipping cost. Cost is zero iff ThresholdMet.
type ShippingQuote struct {
	Cost                  int64  `json:"cost"`
	Method                string `json:"method"`
	EstimatedDays         int    `json:"estimated_days"`
	FreeShippingThreshold int64  `json:"free_shipping_threshold"`
	ThresholdMet          bool   `json:"threshold_met"`
}

// MinimumOrderCheck is the verdict of the minimum order rule.
type MinimumOrderCheck struct {
	Valid   bool   `json:"valid"`
	Minimum int64  `json:"minimum"`
	Message string `json:"message,omitempty"`
}
