package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkout_core/internal/domain/entities"
	"checkout_core/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidCartID    = errors.New("invalid cart id")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartSummary is the cart plus its money breakdown for a destination.
type CartSummary struct {
	CartID       string                     `json:"cart_id"`
	Items        []entities.CartLineItem    `json:"items"`
	ItemCount    int                        `json:"item_count"`
	Totals       entities.CartTotals        `json:"totals"`
	Shipping     entities.ShippingQuote     `json:"shipping"`
	MinimumOrder entities.MinimumOrderCheck `json:"minimum_order"`
}

// ICartUseCase manages the persisted cart of a buyer session.
type ICartUseCase interface {
	GetCart(ctx context.Context, cartID string, dest entities.ShippingDestination) (CartSummary, error)
	AddItem(ctx context.Context, cartID string, item entities.CartLineItem) ([]entities.CartLineItem, error)
	UpdateQuantity(ctx context.Context, cartID, productID string, variant entities.VariantAttributes, quantity int) ([]entities.CartLineItem, error)
	RemoveItem(ctx context.Context, cartID, productID string, variant entities.VariantAttributes) ([]entities.CartLineItem, error)
	Clear(ctx context.Context, cartID string) error
	Validate(ctx context.Context, cartID string) (entities.ReconciliationResult, error)
}

type CartUseCase struct {
	storage    ICartStorage
	reconciler ICartReconciliationUseCase
	now        func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(storage ICartStorage, reconciler ICartReconciliationUseCase) *CartUseCase {
	return &CartUseCase{storage: storage, reconciler: reconciler, now: time.Now}
}

func (u *CartUseCase) GetCart(ctx context.Context, cartID string, dest entities.ShippingDestination) (CartSummary, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return CartSummary{}, ErrInvalidCartID
	}
	return Summarize(cartID, u.storage.Load(ctx, cartID), dest), nil
}

// Summarize computes the totals, shipping quote and minimum order verdict of items.
func Summarize(cartID string, items []entities.CartLineItem, dest entities.ShippingDestination) CartSummary {
	quote := QuoteShipping(items, dest)
	totals := CalculateCartTotals(items, quote.Cost)
	return CartSummary{
		CartID:       cartID,
		Items:        items,
		ItemCount:    entities.CountUnits(items),
		Totals:       totals,
		Shipping:     quote,
		MinimumOrder: ValidateMinimumOrder(totals.Subtotal),
	}
}

func (u *CartUseCase) AddItem(ctx context.Context, cartID string, item entities.CartLineItem) ([]entities.CartLineItem, error) {
	cartID = strings.TrimSpace(cartID)
	item.ProductID = strings.TrimSpace(item.ProductID)
	switch {
	case cartID == "":
		return nil, ErrInvalidCartID
	case item.ProductID == "":
		return nil, ErrInvalidProductID
	case item.Quantity < 1:
		return nil, ErrInvalidQuantity
	case item.Price < 0:
		return nil, ErrInvalidPrice
	}

	items := u.storage.Load(ctx, cartID)
	merged := false
	for i := range items {
		if !items[i].SameLine(item) {
			continue
		}
		if item.MaxStock > 0 {
			items[i].MaxStock = item.MaxStock
		}
		items[i].Quantity = clampToStock(items[i].Quantity+item.Quantity, items[i].MaxStock)
		items[i].Price = item.Price
		merged = true
		break
	}
	if !merged {
		item.Quantity = clampToStock(item.Quantity, item.MaxStock)
		item.StockAvailable = nil
		item.AddedAt = u.now().UTC()
		items = append(items, item)
	}

	if err := u.storage.Save(ctx, cartID, items); err != nil {
		logger.Error(ctx, "[cart][usecase] save failed", err, zap.String("cart_id", cartID))
		return nil, err
	}
	logger.Info(ctx, "[cart][usecase] item added", zap.String("cart_id", cartID), zap.String("product_id", item.ProductID), zap.Bool("merged", merged))
	return items, nil
}

func (u *CartUseCase) UpdateQuantity(ctx context.Context, cartID, productID string, variant entities.VariantAttributes, quantity int) ([]entities.CartLineItem, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return u.RemoveItem(ctx, cartID, productID, variant)
	}
	cartID, productID = strings.TrimSpace(cartID), strings.TrimSpace(productID)
	if cartID == "" {
		return nil, ErrInvalidCartID
	}

	items := u.storage.Load(ctx, cartID)
	idx := findLine(items, productID, variant)
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}
	items[idx].Quantity = clampToStock(quantity, items[idx].MaxStock)

	if err := u.storage.Save(ctx, cartID, items); err != nil {
		logger.Error(ctx, "[cart][usecase] save failed", err, zap.String("cart_id", cartID))
		return nil, err
	}
	return items, nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, cartID, productID string, variant entities.VariantAttributes) ([]entities.CartLineItem, error) {
	cartID, productID = strings.TrimSpace(cartID), strings.TrimSpace(productID)
	if cartID == "" {
		return nil, ErrInvalidCartID
	}

	items := u.storage.Load(ctx, cartID)
	kept := items[:0]
	removed := 0
	for _, it := range items {
		if matchesLine(it, productID, variant) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	if removed == 0 {
		return nil, ErrCartItemNotFound
	}

	if err := u.storage.Save(ctx, cartID, kept); err != nil {
		logger.Error(ctx, "[cart][usecase] save failed", err, zap.String("cart_id", cartID))
		return nil, err
	}
	return kept, nil
}

func (u *CartUseCase) Clear(ctx context.Context, cartID string) error {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return ErrInvalidCartID
	}
	return u.storage.Clear(ctx, cartID)
}

// Validate reconciles the stored cart. When the result is valid the corrected items are
// written back, so price and stock warnings are applied automatically. An invalid cart is
// left untouched for the buyer to review.
func (u *CartUseCase) Validate(ctx context.Context, cartID string) (entities.ReconciliationResult, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.ReconciliationResult{}, ErrInvalidCartID
	}

	result := u.reconciler.Reconcile(ctx, u.storage.Load(ctx, cartID))
	if result.Valid && result.HasWarnings() {
		if err := u.storage.Save(ctx, cartID, result.UpdatedItems); err != nil {
			logger.Warn(ctx, "[cart][usecase] corrected cart not saved", zap.String("cart_id", cartID), zap.Error(err))
		}
	}
	return result, nil
}

func clampToStock(quantity, maxStock int) int {
	if maxStock > 0 && quantity > maxStock {
		return maxStock
	}
	return quantity
}

// matchesLine matches on product id, and on variant only when one is given.
func matchesLine(it entities.CartLineItem, productID string, variant entities.VariantAttributes) bool {
	if it.ProductID != productID {
		return false
	}
	return variant == nil || it.VariantAttributes.Equal(variant)
}

func findLine(items []entities.CartLineItem, productID string, variant entities.VariantAttributes) int {
	for i, it := range items {
		if matchesLine(it, productID, variant) {
			return i
		}
	}
	return -1
}
