package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"checkout_core/internal/domain/entities"
	mock_interfaces "checkout_core/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mapStore is a tiny in-memory IKeyValueStore for round-trip tests.
type mapStore map[string][]byte

func (m mapStore) Get(_ context.Context, key string) ([]byte, error) { return m[key], nil }
func (m mapStore) Set(_ context.Context, key string, v []byte) error { m[key] = v; return nil }
func (m mapStore) Delete(_ context.Context, key string) error        { delete(m, key); return nil }

func TestCartStorage_SaveLoad(t *testing.T) {
	store := mapStore{}
	clock := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	s := NewCartStorage(store)
	s.now = func() time.Time { return clock }

	items := []entities.CartLineItem{
		{ProductID: "p1", Name: "Mochila", Quantity: 2, Price: 50_000, VariantAttributes: entities.VariantAttributes{"color": "negro"}, VendorID: "v1", MaxStock: 9},
		{ProductID: "p2", Quantity: 1, Price: 30_000},
	}
	require.NoError(t, s.Save(context.Background(), "cart-1", items))

	clock = clock.Add(CartTTL - time.Minute)
	assert.Equal(t, items, s.Load(context.Background(), "cart-1"))

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(store["mestore_cart:cart-1"], &envelope))
	assert.Contains(t, envelope, "items")
	assert.Contains(t, envelope, "timestamp")
}

func TestCartStorage_StaleCartIsCleared(t *testing.T) {
	store := mapStore{}
	clock := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	s := NewCartStorage(store)
	s.now = func() time.Time { return clock }

	require.NoError(t, s.Save(context.Background(), "", []entities.CartLineItem{{ProductID: "p1", Quantity: 1, Price: 1}}))
	clock = clock.Add(CartTTL + time.Second)

	got := s.Load(context.Background(), "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NotContains(t, store, CartStorageKey)
}

func TestCartStorage_LoadNeverFails(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		s := NewCartStorage(mapStore{cartStorageKey("c"): []byte("{not json")})
		assert.Empty(t, s.Load(context.Background(), "c"))
	})

	t.Run("missing", func(t *testing.T) {
		s := NewCartStorage(mapStore{})
		assert.Empty(t, s.Load(context.Background(), "c"))
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
		kv.EXPECT().Get(gomock.Any(), "mestore_cart:c").Return(nil, errors.New("redis down"))

		s := NewCartStorage(kv)
		got := s.Load(context.Background(), "c")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCartStorage_Clear(t *testing.T) {
	store := mapStore{}
	s := NewCartStorage(store)
	require.NoError(t, s.Save(context.Background(), "c", []entities.CartLineItem{{ProductID: "p"}}))
	require.NoError(t, s.Clear(context.Background(), "c"))
	assert.Empty(t, store)
}
