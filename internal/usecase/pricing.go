package usecase

import (
	"strings"
	"unicode"

	"checkout_core/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Colombian pricing constants, in COP.
const (
	TaxRatePercent        int64 = 19 // IVA
	FreeShippingThreshold int64 = 100_000
	BaseShippingCost      int64 = 15_000
	RemoteCitySurcharge   int64 = 5_000
	ExtraUnitSurcharge    int64 = 2_000
	UnitsIncludedInBase         = 5
	MinimumOrderAmount    int64 = 10_000

	freeShippingDays    = 3
	capitalRegionDays   = 2
	otherRegionDays     = 4
	shippingMethodFree  = "Envío gratis"
	shippingMethodBasic = "Envío estándar"
)

var majorCities = map[string]struct{}{
	"bogota":       {},
	"medellin":     {},
	"cali":         {},
	"barranquilla": {},
	"cartagena":    {},
}

var capitalRegion = map[string]struct{}{
	"cundinamarca": {},
	"bogota":       {},
	"bogota d.c.":  {},
	"bogota dc":    {},
}

var copPrinter = message.NewPrinter(language.Spanish)

// CalculateSubtotal sums price x quantity over every line.
func CalculateSubtotal(items []entities.CartLineItem) int64 {
	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	return subtotal
}

// CalculateTax applies IVA to the subtotal, rounded half up to the peso.
func CalculateTax(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	return (subtotal*TaxRatePercent + 50) / 100
}

// CalculateCartTotals computes the money breakdown. Tax is not applied to shipping and
// no discount engine exists, so Discount is always zero.
func CalculateCartTotals(items []entities.CartLineItem, shipping int64) entities.CartTotals {
	subtotal := CalculateSubtotal(items)
	tax := CalculateTax(subtotal)
	var discount int64
	return entities.CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal + tax - discount + shipping,
	}
}

// CalculateShippingCost is an approximate stand-in for a shipping rate API.
//
// units is the aggregate unit count of the cart, not the number of lines.
func CalculateShippingCost(subtotal int64, units int, dest entities.ShippingDestination) entities.ShippingQuote {
	if subtotal >= FreeShippingThreshold {
		return entities.ShippingQuote{
			Cost:                  0,
			Method:                shippingMethodFree,
			EstimatedDays:         freeShippingDays,
			FreeShippingThreshold: FreeShippingThreshold,
			ThresholdMet:          true,
		}
	}

	cost := BaseShippingCost
	if _, ok := majorCities[normalizePlace(dest.City)]; !ok {
		cost += RemoteCitySurcharge
	}
	if units > UnitsIncludedInBase {
		cost += int64(units-UnitsIncludedInBase) * ExtraUnitSurcharge
	}

	days := otherRegionDays
	if _, ok := capitalRegion[normalizePlace(dest.Department)]; ok {
		days = capitalRegionDays
	}

	return entities.ShippingQuote{
		Cost:                  cost,
		Method:                shippingMethodBasic,
		EstimatedDays:         days,
		FreeShippingThreshold: FreeShippingThreshold,
		ThresholdMet:          false,
	}
}

// QuoteShipping quotes shipping for a whole cart.
func QuoteShipping(items []entities.CartLineItem, dest entities.ShippingDestination) entities.ShippingQuote {
	return CalculateShippingCost(CalculateSubtotal(items), entities.CountUnits(items), dest)
}

// ValidateMinimumOrder checks amount against the marketplace minimum.
func ValidateMinimumOrder(amount int64) entities.MinimumOrderCheck {
	if amount >= MinimumOrderAmount {
		return entities.MinimumOrderCheck{Valid: true, Minimum: MinimumOrderAmount}
	}
	return entities.MinimumOrderCheck{
		Valid:   false,
		Minimum: MinimumOrderAmount,
		Message: "El pedido mínimo es de " + FormatCOP(MinimumOrderAmount),
	}
}

// FormatCOP renders an amount as Colombian pesos, e.g. 10000 -> "$10.000".
func FormatCOP(amount int64) string {
	if amount < 0 {
		return "-" + copPrinter.Sprintf("$%d", -amount)
	}
	return copPrinter.Sprintf("$%d", amount)
}

func normalizePlace(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}
