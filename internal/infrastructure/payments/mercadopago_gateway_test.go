package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout_core/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentClient struct {
	created   *payment.Request
	createRes *payment.Response
	createErr error
	searched  *payment.SearchRequest
	searchRes *payment.SearchResponse
}

func (f *fakePaymentClient) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.created = &req
	return f.createRes, f.createErr
}

func (f *fakePaymentClient) Search(_ context.Context, req payment.SearchRequest) (*payment.SearchResponse, error) {
	f.searched = &req
	return f.searchRes, nil
}

func pseRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		OrderID:     "o-1",
		Amount:      169_700,
		Description: "Pedido MS-1",
		Info: entities.NewPaymentInfo("ana@example.co", entities.PSEDetails{
			BankCode: "1007", UserType: entities.PSEUserTypeJuridica, IdentificationType: "NIT", IdentificationNumber: "8600029644",
		}),
	}
}

func TestMercadoPagoGateway_PSE(t *testing.T) {
	client := &fakePaymentClient{createRes: &payment.Response{ID: 42, Status: "pending"}}
	g := &MercadoPagoGateway{client: client, callbackURL: "https://mestore.co/checkout/resultado", now: time.Now}

	resp, err := g.ProcessPayment(context.Background(), pseRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "42", resp.TransactionID)
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, client.created)
	assert.Equal(t, "pse", client.created.PaymentMethodID)
	assert.Equal(t, "o-1", client.created.ExternalReference)
	assert.Equal(t, float64(169_700), client.created.TransactionAmount)
}

func TestMercadoPagoGateway_Declined(t *testing.T) {
	client := &fakePaymentClient{createRes: &payment.Response{ID: 7, Status: "rejected"}}
	g := &MercadoPagoGateway{client: client, now: time.Now}

	resp, err := g.ProcessPayment(context.Background(), pseRequest())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "declined", resp.Status)
}

func TestMercadoPagoGateway_SDKError(t *testing.T) {
	client := &fakePaymentClient{createErr: errors.New("401 unauthorized")}
	g := &MercadoPagoGateway{client: client, now: time.Now}

	_, err := g.ProcessPayment(context.Background(), pseRequest())
	assert.Error(t, err)
}

func TestMercadoPagoGateway_CardNeedsToken(t *testing.T) {
	g := &MercadoPagoGateway{client: &fakePaymentClient{}, now: time.Now}
	req := pseRequest()
	req.Info = entities.NewPaymentInfo("ana@example.co", entities.CardDetails{Number: "4111111111111111", HolderName: "ANA", ExpiryMonth: 1, ExpiryYear: 2030, CVV: "123"})

	_, err := g.ProcessPayment(context.Background(), req)
	assert.ErrorIs(t, err, ErrCardTokenRequired)

	req.Info = entities.NewPaymentInfo("ana@example.co", entities.BankTransferDetails{})
	_, err = g.ProcessPayment(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", "https://mestore.co/checkout/resultado", true)
	require.NoError(t, err)

	resp, err := g.ProcessPayment(context.Background(), pseRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.PaymentURL)

	status, err := g.GetPaymentStatus(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", status.Status)
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", "", false)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_GetPaymentStatus(t *testing.T) {
	client := &fakePaymentClient{searchRes: &payment.SearchResponse{Results: []payment.Response{{ID: 9, Status: "approved"}}}}
	g := &MercadoPagoGateway{client: client, now: time.Now}

	resp, err := g.GetPaymentStatus(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, "9", resp.TransactionID)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "o-1", client.searched.Filters["external_reference"])

	client.searchRes = &payment.SearchResponse{}
	_, err = g.GetPaymentStatus(context.Background(), "o-2")
	assert.ErrorIs(t, err, ErrMercadoPagoPaymentNotFound)
}

func TestCardBrand(t *testing.T) {
	assert.Equal(t, "visa", cardBrand("4111 1111 1111 1111"))
	assert.Equal(t, "master", cardBrand("5555555555554444"))
	assert.Equal(t, "master", cardBrand("2221000000000009"))
	assert.Equal(t, "amex", cardBrand("378282246310005"))
	assert.Equal(t, "discover", cardBrand("6011111111111117"))
	assert.Equal(t, "", cardBrand("36227206271667"))
	assert.Equal(t, "", cardBrand("9999"))
}
