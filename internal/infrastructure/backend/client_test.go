package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/api/v1/", Timeout: 2 * time.Second, Transport: http.DefaultTransport, BreakerMaxFailures: 2, BreakerOpenTimeout: time.Minute})
}

func TestClient_GetProduct(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/v1/products/p1":
			_, _ = w.Write([]byte(`{"id":"p1","name":"Mochila","price":"50000.00","stock_quantity":4,"estado":"APROBADO","vendor_id":12}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Producto no encontrado"}`))
		}
	})
	ctx := WithBearerToken(context.Background(), "Bearer abc")

	p, err := c.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entities.Product{ID: "p1", Name: "Mochila", Price: 50_000, StockQuantity: 4, Status: entities.ApprovalStatusAprobado, VendorID: "12"}, p)
	assert.True(t, p.IsPurchasable())

	_, err = c.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, interfaces.ErrProductNotFound)
}

func TestClient_CreateOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(idempotencyHeader))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Medellín", body["shipping_city"])
		assert.Equal(t, "Antioquia", body["shipping_department"])
		items := body["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, map[string]any{"product_id": "p1", "quantity": float64(2), "variant_attributes": map[string]any{"talla": "M"}}, items[0])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":101,"order_number":"MS-101","status":"pending","total_amount":119000.0}`))
	})

	order, err := c.CreateOrder(context.Background(), entities.OrderRequest{
		Items:    []entities.OrderItem{{ProductID: "p1", Quantity: 2, VariantAttributes: entities.VariantAttributes{"talla": "M"}}},
		Shipping: entities.ShippingAddress{Name: "Ana", City: "Medellín", Department: "Antioquia"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.Order{ID: "101", OrderNumber: "MS-101", Status: "pending", Total: 119_000}, order)
}

func TestClient_BackendErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"msg":"Stock insuficiente"},{"msg":"Dirección requerida"}]}`))
	})

	_, err := c.CreateOrder(context.Background(), entities.OrderRequest{})
	var be *interfaces.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusUnprocessableEntity, be.StatusCode)
	msg, ok := interfaces.BackendMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Stock insuficiente; Dirección requerida", msg)
}

func TestClient_ProcessPayment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/payments/process", r.URL.Path)
		var body processPaymentPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "o-1", body.OrderID)
		assert.Equal(t, "credit_card", body.PaymentMethod)
		assert.Equal(t, "4111111111111111", body.PaymentData["card_number"])
		assert.Equal(t, "ana@example.co", body.PaymentData["email"])
		_, _ = w.Write([]byte(`{"success":true,"transaction_id":"tx-1","status":"completed"}`))
	})

	resp, err := c.ProcessPayment(context.Background(), entities.PaymentRequest{
		OrderID: "o-1",
		Info: entities.NewPaymentInfo("ana@example.co", entities.CardDetails{
			Number: "4111 1111 1111 1111", HolderName: "ANA", ExpiryMonth: 12, ExpiryYear: 2030, CVV: "123",
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentResponse{Success: true, TransactionID: "tx-1", Status: "completed"}, resp)
}

func TestClient_GetPaymentStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/payments/status/o-9", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"transaction_id":77,"status":"processing"}`))
	})

	resp, err := c.GetPaymentStatus(context.Background(), "o-9")
	require.NoError(t, err)
	assert.Equal(t, "77", resp.TransactionID)
	assert.Equal(t, "processing", resp.Status)
}

func TestClient_ListPaymentMethods(t *testing.T) {
	for name, body := range map[string]string{
		"bare list": `[{"id":"pse","name":"PSE","type":"pse","enabled":true},{"id":"credit_card","name":"Tarjeta","enabled":false}]`,
		"wrapped":   `{"methods":[{"id":"pse","name":"PSE","type":"pse","enabled":true},{"id":"credit_card","name":"Tarjeta","enabled":false}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			got, err := c.ListPaymentMethods(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []entities.PaymentMethodOption{
				{ID: "pse", Name: "PSE", Type: entities.PaymentMethodPSE, Enabled: true},
				{ID: "credit_card", Name: "Tarjeta", Type: entities.PaymentMethodCreditCard, Enabled: false},
			}, got)
		})
	}
}

func TestClient_CircuitBreaker(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/api/v1/products/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})
	ctx := context.Background()

	// 404s never trip the breaker
	for i := 0; i < 3; i++ {
		_, err := c.GetProduct(ctx, "gone")
		assert.ErrorIs(t, err, interfaces.ErrProductNotFound)
	}

	for i := 0; i < 2; i++ {
		_, err := c.GetProduct(ctx, "p1")
		var be *interfaces.BackendError
		assert.True(t, errors.As(err, &be))
	}
	before := calls.Load()
	_, err := c.GetProduct(ctx, "p1")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, before, calls.Load(), "open breaker short-circuits the call")
}

func TestBearerToken(t *testing.T) {
	assert.Empty(t, BearerToken(context.Background()))
	assert.Empty(t, BearerToken(WithBearerToken(context.Background(), "  ")))
	assert.Equal(t, "Bearer x", BearerToken(WithBearerToken(context.Background(), "Bearer x")))
}
