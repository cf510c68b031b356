package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"
	"checkout_core/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFetchConcurrency = 8

	msgEmptyCart         = "El carrito está vacío"
	msgValidationFailed  = "No fue posible validar el carrito. Intenta nuevamente."
	msgProductNotFound   = "El producto %s ya no está disponible"
	msgProductInactive   = "El producto %s no está disponible para la venta"
	msgProductOutOfStock = "El producto %s está agotado"
	msgStockReduced      = "Solo quedan %d unidades de %s. La cantidad se ajustó de %d a %d"
	msgPriceChanged      = "El precio de %s cambió de %s a %s"
)

// ICartReconciliationUseCase re-validates a local cart against the backend catalog.
// Reconcile never fails; every problem is reported inside the result.
type ICartReconciliationUseCase interface {
	Reconcile(ctx context.Context, items []entities.CartLineItem) entities.ReconciliationResult
}

type CartReconciliationUseCase struct {
	catalog     interfaces.IProductCatalog
	concurrency int
}

var _ ICartReconciliationUseCase = (*CartReconciliationUseCase)(nil)

func NewCartReconciliationUseCase(catalog interfaces.IProductCatalog) *CartReconciliationUseCase {
	return &CartReconciliationUseCase{catalog: catalog, concurrency: defaultFetchConcurrency}
}

type fetchOutcome struct {
	product entities.Product
	err     error
}

func (u *CartReconciliationUseCase) Reconcile(ctx context.Context, items []entities.CartLineItem) entities.ReconciliationResult {
	if len(items) == 0 {
		return entities.ReconciliationResult{
			Valid:        false,
			Errors:       []entities.ReconciliationIssue{{Kind: entities.IssueEmptyCart, Message: msgEmptyCart}},
			Warnings:     []entities.ReconciliationIssue{},
			UpdatedItems: []entities.CartLineItem{},
		}
	}

	outcomes := u.fetchProducts(ctx, uniqueProductIDs(items))
	if totalFailure(ctx, outcomes) {
		logger.Warn(ctx, "[cart][reconciliation] catalog unreachable", zap.Int("products", len(outcomes)))
		return validationFailed(items)
	}

	result := entities.ReconciliationResult{
		Errors:       []entities.ReconciliationIssue{},
		Warnings:     []entities.ReconciliationIssue{},
		UpdatedItems: make([]entities.CartLineItem, 0, len(items)),
	}
	for _, item := range items {
		out := outcomes[item.ProductID]
		updated, keep := reconcileItem(item, out, &result)
		if keep {
			result.UpdatedItems = append(result.UpdatedItems, updated)
		}
	}
	result.Valid = len(result.Errors) == 0

	logger.Info(ctx, "[cart][reconciliation] cart reconciled",
		zap.Bool("valid", result.Valid),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)))
	return result
}

func (u *CartReconciliationUseCase) fetchProducts(ctx context.Context, ids []string) map[string]fetchOutcome {
	var (
		mu       sync.Mutex
		outcomes = make(map[string]fetchOutcome, len(ids))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			p, err := u.catalog.GetProduct(gctx, id)
			if err != nil && !errors.Is(err, interfaces.ErrProductNotFound) {
				logger.Warn(ctx, "[cart][reconciliation] product fetch failed", zap.String("product_id", id), zap.Error(err))
			}
			mu.Lock()
			outcomes[id] = fetchOutcome{product: p, err: err}
			mu.Unlock()
			// a single failed fetch only makes that product unavailable
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func reconcileItem(item entities.CartLineItem, out fetchOutcome, result *entities.ReconciliationResult) (entities.CartLineItem, bool) {
	name := displayName(item, out.product)
	issue := entities.ReconciliationIssue{ProductID: item.ProductID, ProductName: name, Kind: entities.IssueProductUnavailable}

	switch {
	case out.err != nil || out.product.ID == "":
		issue.Message = fmt.Sprintf(msgProductNotFound, name)
		result.Errors = append(result.Errors, issue)
		return item, false
	case !out.product.IsPurchasable():
		issue.Message = fmt.Sprintf(msgProductInactive, name)
		result.Errors = append(result.Errors, issue)
		return item, false
	case out.product.StockQuantity <= 0:
		issue.Message = fmt.Sprintf(msgProductOutOfStock, name)
		result.Errors = append(result.Errors, issue)
		return item, false
	}

	p := out.product
	stock := p.StockQuantity
	item.StockAvailable = &stock
	item.MaxStock = stock
	if item.Name == "" {
		item.Name = p.Name
	}

	// stock is clamped per line; variant lines of one product are not summed, the
	// backend enforces per-variant stock when the order is created
	if item.Quantity > stock {
		result.Warnings = append(result.Warnings, entities.ReconciliationIssue{
			Kind:        entities.IssueStockReduced,
			ProductID:   item.ProductID,
			ProductName: name,
			Message:     fmt.Sprintf(msgStockReduced, stock, name, item.Quantity, stock),
			OldValue:    int64(item.Quantity),
			NewValue:    int64(stock),
		})
		item.Quantity = stock
	}

	// prices are integral pesos, so any difference is a real change
	if p.Price != item.Price {
		result.Warnings = append(result.Warnings, entities.ReconciliationIssue{
			Kind:        entities.IssuePriceChanged,
			ProductID:   item.ProductID,
			ProductName: name,
			Message:     fmt.Sprintf(msgPriceChanged, name, FormatCOP(item.Price), FormatCOP(p.Price)),
			OldValue:    item.Price,
			NewValue:    p.Price,
		})
		item.Price = p.Price
	}
	return item, true
}

// totalFailure reports whether no product could be checked for reasons other than the
// backend answering that it does not exist.
func totalFailure(ctx context.Context, outcomes map[string]fetchOutcome) bool {
	if ctx.Err() != nil {
		return true
	}
	for _, out := range outcomes {
		if out.err == nil || errors.Is(out.err, interfaces.ErrProductNotFound) {
			return false
		}
	}
	return len(outcomes) > 0
}

func validationFailed(items []entities.CartLineItem) entities.ReconciliationResult {
	return entities.ReconciliationResult{
		Valid:        false,
		Errors:       []entities.ReconciliationIssue{{Kind: entities.IssueValidationFailed, Message: msgValidationFailed}},
		Warnings:     []entities.ReconciliationIssue{},
		UpdatedItems: append([]entities.CartLineItem(nil), items...),
	}
}

func uniqueProductIDs(items []entities.CartLineItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

func displayName(item entities.CartLineItem, p entities.Product) string {
	switch {
	case p.Name != "":
		return p.Name
	case item.Name != "":
		return item.Name
	default:
		return item.ProductID
	}
}
