package usecase

import (
	"context"
	"errors"
	"testing"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"
	mock_interfaces "checkout_core/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func approved(id string, price int64, stock int) entities.Product {
	return entities.Product{ID: id, Name: "Producto " + id, Price: price, StockQuantity: stock, Status: entities.ApprovalStatusAprobado, VendorID: "v1"}
}

func TestCartReconciliation_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)

	got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), nil)

	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, entities.IssueEmptyCart, got.Errors[0].Kind)
	assert.Empty(t, got.UpdatedItems)
}

func TestCartReconciliation_ProductNotApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)

	inactive := approved("p1", 50_000, 10)
	inactive.Status = entities.ApprovalStatusPendiente
	catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(inactive, nil)
	catalog.EXPECT().GetProduct(gomock.Any(), "p2").Return(approved("p2", 30_000, 5), nil)

	items := []entities.CartLineItem{
		{ProductID: "p1", Quantity: 1, Price: 50_000},
		{ProductID: "p2", Quantity: 1, Price: 30_000},
	}
	got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), items)

	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "p1", got.Errors[0].ProductID)
	assert.Contains(t, got.Errors[0].Message, "Producto p1")
	require.Len(t, got.UpdatedItems, 1)
	assert.Equal(t, "p2", got.UpdatedItems[0].ProductID)
}

func TestCartReconciliation_StockClamped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
	catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(approved("p1", 20_000, 3), nil)

	got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), []entities.CartLineItem{
		{ProductID: "p1", Quantity: 10, Price: 20_000},
	})

	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, entities.IssueStockReduced, got.Warnings[0].Kind)
	assert.Equal(t, int64(10), got.Warnings[0].OldValue)
	assert.Equal(t, int64(3), got.Warnings[0].NewValue)
	require.Len(t, got.UpdatedItems, 1)
	assert.Equal(t, 3, got.UpdatedItems[0].Quantity)
	require.NotNil(t, got.UpdatedItems[0].StockAvailable)
	assert.Equal(t, 3, *got.UpdatedItems[0].StockAvailable)
}

func TestCartReconciliation_PriceChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
	catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(approved("p1", 55_000, 10), nil)

	got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), []entities.CartLineItem{
		{ProductID: "p1", Quantity: 2, Price: 50_000},
	})

	assert.True(t, got.Valid)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, entities.IssuePriceChanged, got.Warnings[0].Kind)
	assert.Equal(t, int64(55_000), got.UpdatedItems[0].Price)
	assert.Equal(t, 2, got.UpdatedItems[0].Quantity)
}

func TestCartReconciliation_UnchangedItemIsAnnotated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
	// two lines of the same product are fetched once
	catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(approved("p1", 10_000, 7), nil).Times(1)

	items := []entities.CartLineItem{
		{ProductID: "p1", Quantity: 1, Price: 10_000, VariantAttributes: entities.VariantAttributes{"talla": "M"}},
		{ProductID: "p1", Quantity: 2, Price: 10_000, VariantAttributes: entities.VariantAttributes{"talla": "L"}},
	}
	got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), items)

	assert.True(t, got.Valid)
	assert.Empty(t, got.Warnings)
	require.Len(t, got.UpdatedItems, 2)
	for _, it := range got.UpdatedItems {
		require.NotNil(t, it.StockAvailable)
		assert.Equal(t, 7, *it.StockAvailable)
	}
}

func TestCartReconciliation_VariantLinesClampedPerLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
	catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(approved("p1", 10_000, 3), nil).Times(1)

	items := []entities.CartLineItem{
		{ProductID: "p1", Quantity: 2, Price: 10_000, VariantAttributes: entities.VariantAttributes{"talla": "M"}},
		{ProductID: "p1", Quantity: 2, Price: 10_000, VariantAttributes: entities.VariantAttributes{"talla": "L"}},
	}
	got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), items)

	// 4 units against stock 3 pass: each line is within stock on its own
	assert.True(t, got.Valid)
	assert.Empty(t, got.Warnings)
	require.Len(t, got.UpdatedItems, 2)
	assert.Equal(t, 2, got.UpdatedItems[0].Quantity)
	assert.Equal(t, 2, got.UpdatedItems[1].Quantity)
}

func TestCartReconciliation_FetchFailures(t *testing.T) {
	t.Run("one failure marks only that product unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(entities.Product{}, errors.New("timeout"))
		catalog.EXPECT().GetProduct(gomock.Any(), "p2").Return(approved("p2", 30_000, 5), nil)

		got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), []entities.CartLineItem{
			{ProductID: "p1", Quantity: 1, Price: 1_000},
			{ProductID: "p2", Quantity: 1, Price: 30_000},
		})

		assert.False(t, got.Valid)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, entities.IssueProductUnavailable, got.Errors[0].Kind)
		assert.Len(t, got.UpdatedItems, 1)
	})

	t.Run("not found everywhere is per item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(entities.Product{}, interfaces.ErrProductNotFound)

		got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), []entities.CartLineItem{
			{ProductID: "p1", Name: "Bolso", Quantity: 1, Price: 1_000},
		})

		assert.False(t, got.Valid)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "p1", got.Errors[0].ProductID)
		assert.Contains(t, got.Errors[0].Message, "Bolso")
		assert.Empty(t, got.UpdatedItems)
	})

	t.Run("total outage is a single generic error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		catalog.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(entities.Product{}, errors.New("connection refused")).Times(2)

		items := []entities.CartLineItem{
			{ProductID: "p1", Quantity: 1, Price: 1_000},
			{ProductID: "p2", Quantity: 1, Price: 2_000},
		}
		got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), items)

		assert.False(t, got.Valid)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, entities.IssueValidationFailed, got.Errors[0].Kind)
		assert.Equal(t, items, got.UpdatedItems)
	})
}

func TestCartReconciliation_OutOfStockIsBlocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
	catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(approved("p1", 10_000, 0), nil)

	got := NewCartReconciliationUseCase(catalog).Reconcile(context.Background(), []entities.CartLineItem{
		{ProductID: "p1", Quantity: 1, Price: 10_000},
	})

	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0].Message, "agotado")
	assert.Empty(t, got.UpdatedItems)
	assert.Empty(t, got.Warnings)
}
