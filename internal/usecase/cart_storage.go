package usecase

import (
	"context"
	"encoding/json"
	"time"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"
	"checkout_core/pkg/logger"

	"go.uber.org/zap"
)

const (
	// CartStorageKey is the fixed key the cart is stored under. Carts scoped to an id
	// are stored under CartStorageKey + ":" + id.
	CartStorageKey = "mestore_cart"
	CartTTL        = 7 * 24 * time.Hour
)

// ICartStorage persists the local cart. Load never fails: missing, malformed or stale
// data reads as an empty cart.
type ICartStorage interface {
	Save(ctx context.Context, cartID string, items []entities.CartLineItem) error
	Load(ctx context.Context, cartID string) []entities.CartLineItem
	Clear(ctx context.Context, cartID string) error
}

// storedCart is the persisted envelope. Timestamp is epoch milliseconds.
type storedCart struct {
	Items     []entities.CartLineItem `json:"items"`
	Timestamp int64                   `json:"timestamp"`
}

type CartStorage struct {
	store interfaces.IKeyValueStore
	ttl   time.Duration
	now   func() time.Time
}

var _ ICartStorage = (*CartStorage)(nil)

func NewCartStorage(store interfaces.IKeyValueStore) *CartStorage {
	return &CartStorage{store: store, ttl: CartTTL, now: time.Now}
}

func cartStorageKey(cartID string) string {
	if cartID == "" {
		return CartStorageKey
	}
	return CartStorageKey + ":" + cartID
}

func (s *CartStorage) Save(ctx context.Context, cartID string, items []entities.CartLineItem) error {
	if items == nil {
		items = []entities.CartLineItem{}
	}
	b, err := json.Marshal(storedCart{Items: items, Timestamp: s.now().UnixMilli()})
	if err != nil {
		return err
	}
	return s.store.Set(ctx, cartStorageKey(cartID), b)
}

func (s *CartStorage) Load(ctx context.Context, cartID string) []entities.CartLineItem {
	key := cartStorageKey(cartID)
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		logger.Warn(ctx, "[cart][storage] load failed; using empty cart", zap.String("key", key), zap.Error(err))
		return []entities.CartLineItem{}
	}
	if len(raw) == 0 {
		return []entities.CartLineItem{}
	}

	var stored storedCart
	if err := json.Unmarshal(raw, &stored); err != nil {
		logger.Warn(ctx, "[cart][storage] malformed cart discarded", zap.String("key", key), zap.Error(err))
		return []entities.CartLineItem{}
	}

	savedAt := time.UnixMilli(stored.Timestamp)
	if s.now().Sub(savedAt) > s.ttl {
		logger.Info(ctx, "[cart][storage] stale cart discarded", zap.String("key", key), zap.Time("saved_at", savedAt))
		if err := s.store.Delete(ctx, key); err != nil {
			logger.Warn(ctx, "[cart][storage] stale cart delete failed", zap.String("key", key), zap.Error(err))
		}
		return []entities.CartLineItem{}
	}

	if stored.Items == nil {
		return []entities.CartLineItem{}
	}
	return stored.Items
}

func (s *CartStorage) Clear(ctx context.Context, cartID string) error {
	return s.store.Delete(ctx, cartStorageKey(cartID))
}
