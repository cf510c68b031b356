package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_core/internal/adapter/http/handlers/mocks"
	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("success with destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.GET("/v1/carts/:cart_id", h.GetCart)

		dest := entities.ShippingDestination{City: "Medellín", Department: "Antioquia"}
		summary := usecase.Summarize("c1", []entities.CartLineItem{{ProductID: "p1", Quantity: 2, Price: 65_000}}, dest)
		uc.EXPECT().GetCart(gomock.Any(), "c1", dest).Return(summary, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/carts/c1?city=Medell%C3%ADn&department=Antioquia", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Totals entities.CartTotals `json:"totals"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Totals.Total != 154_700 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid cart id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.GET("/v1/carts/:cart_id", h.GetCart)

		uc.EXPECT().GetCart(gomock.Any(), " ", gomock.Any()).Return(usecase.CartSummary{}, usecase.ErrInvalidCartID)

		req := httptest.NewRequest(http.MethodGet, "/v1/carts/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCartHandler_GetTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := newTestRouter(t)
	r.GET("/v1/carts/:cart_id/totals", h.GetTotals)

	summary := usecase.Summarize("c1", []entities.CartLineItem{{ProductID: "p1", Quantity: 1, Price: 20_000}}, entities.ShippingDestination{City: "Pasto"})
	uc.EXPECT().GetCart(gomock.Any(), "c1", entities.ShippingDestination{City: "Pasto"}).Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/carts/c1/totals?city=Pasto", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	// 20000 + 3800 IVA + 20000 shipping to a non-major city
	if body["formatted"]["total"] != usecase.FormatCOP(43_800) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/carts/:cart_id/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/items", bytes.NewBufferString(`{"product_id":"p1","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Details map[string]string `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Details["quantity"] != "required" {
			t.Fatalf("expected quantity detail, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/carts/:cart_id/items", h.AddItem)

		want := entities.CartLineItem{ProductID: "p1", Name: "Mochila", Quantity: 2, Price: 45_000, VariantAttributes: entities.VariantAttributes{"color": "rojo"}}
		uc.EXPECT().AddItem(gomock.Any(), "c1", want).Return([]entities.CartLineItem{want}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/items", bytes.NewBufferString(`{"product_id":"p1","name":"Mochila","quantity":2,"price":45000,"variant_attributes":{"color":"rojo"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["item_count"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/carts/:cart_id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "c1", gomock.Any()).Return(nil, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/items", bytes.NewBufferString(`{"product_id":"p1","quantity":1,"price":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCartHandler_UpdateAndRemove(t *testing.T) {
	t.Run("update missing quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.PATCH("/v1/carts/:cart_id/items/:product_id", h.UpdateItem)

		req := httptest.NewRequest(http.MethodPatch, "/v1/carts/c1/items/p1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.PATCH("/v1/carts/:cart_id/items/:product_id", h.UpdateItem)

		uc.EXPECT().UpdateQuantity(gomock.Any(), "c1", "p1", entities.VariantAttributes(nil), 0).Return([]entities.CartLineItem{}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/carts/c1/items/p1", bytes.NewBufferString(`{"quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.PATCH("/v1/carts/:cart_id/items/:product_id", h.UpdateItem)

		uc.EXPECT().UpdateQuantity(gomock.Any(), "c1", "p9", gomock.Any(), 3).Return(nil, usecase.ErrCartItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/carts/c1/items/p9", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove with variant query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.DELETE("/v1/carts/:cart_id/items/:product_id", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "c1", "p1", entities.VariantAttributes{"talla": "M"}).Return([]entities.CartLineItem{}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/carts/c1/items/p1?variant[talla]=M", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := newTestRouter(t)
		r.DELETE("/v1/carts/:cart_id", h.ClearCart)

		uc.EXPECT().Clear(gomock.Any(), "c1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/carts/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCartHandler_ValidateCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := newTestRouter(t)
	r.POST("/v1/carts/:cart_id/validate", h.ValidateCart)

	uc.EXPECT().Validate(gomock.Any(), "c1").Return(entities.ReconciliationResult{
		Valid:        false,
		Errors:       []entities.ReconciliationIssue{{Kind: entities.IssueProductUnavailable, ProductID: "p1", Message: "El producto Mochila ya no está disponible"}},
		UpdatedItems: []entities.CartLineItem{},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/validate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Valid    bool              `json:"valid"`
		Errors   []json.RawMessage `json:"errors"`
		Warnings []json.RawMessage `json:"warnings"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Valid || len(body.Errors) != 1 || body.Warnings == nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
