package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase"
	"checkout_core/internal/usecase/interfaces"
	"checkout_core/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrCardTokenRequired               = errors.New("mercado pago card payments require a card token")
	ErrUnsupportedPaymentMethod        = errors.New("payment method not supported by mercado pago")
	ErrMercadoPagoPaymentNotFound      = fmt.Errorf("mercado pago: %w", interfaces.ErrPaymentNotFound)
)

// paymentClient is the subset of the SDK payment client used by the gateway.
type paymentClient interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

// MercadoPagoGateway processes PSE and tokenized card payments directly with Mercado Pago.
// In mock mode no request leaves the process.
type MercadoPagoGateway struct {
	client      paymentClient
	callbackURL string
	mockMode    bool
	now         func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, callbackURL string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		logger.Log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{callbackURL: callbackURL, mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		logger.Log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), callbackURL: callbackURL, now: time.Now}, nil
}

func (g *MercadoPagoGateway) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error) {
	reqMap, err := g.buildRequest(req)
	if err != nil {
		logger.Warn(ctx, "[payment][gateway] request rejected", zap.String("order_id", req.OrderID), zap.Error(err))
		return entities.PaymentResponse{}, err
	}

	if g.mockMode {
		return g.mockPayment(ctx, req), nil
	}
	if g.client == nil {
		logger.Warn(ctx, "[payment][gateway] gateway not configured")
		return entities.PaymentResponse{}, ErrMercadoPagoGatewayNotConfigured
	}

	b, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(b, &sdkReq); err != nil {
		logger.Error(ctx, "[payment][gateway] payload unmarshal failed", err)
		return entities.PaymentResponse{}, err
	}

	logger.Info(ctx, "[payment][gateway] create start", zap.String("order_id", req.OrderID), zap.String("method", string(req.Info.Method())))
	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		logger.Error(ctx, "[payment][gateway] sdk create failed", err, zap.String("order_id", req.OrderID))
		return entities.PaymentResponse{}, err
	}
	logger.Info(ctx, "[payment][gateway] create success", zap.String("provider_payment_id", fmt.Sprintf("%d", resp.ID)), zap.String("provider_status", resp.Status))

	return toPaymentResponse(fmt.Sprintf("%d", resp.ID), resp.Status, externalResourceURL(resp)), nil
}

// GetPaymentStatus looks up the latest payment whose external_reference is orderID.
func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, orderID string) (entities.PaymentResponse, error) {
	if g.mockMode {
		return entities.PaymentResponse{Success: true, TransactionID: "mock-" + orderID, Status: "approved"}, nil
	}
	if g.client == nil {
		return entities.PaymentResponse{}, ErrMercadoPagoGatewayNotConfigured
	}

	res, err := g.client.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": orderID, "sort": "date_created", "criteria": "desc"},
	})
	if err != nil {
		logger.Error(ctx, "[payment][gateway] sdk search failed", err, zap.String("order_id", orderID))
		return entities.PaymentResponse{}, err
	}
	if res == nil || len(res.Results) == 0 {
		return entities.PaymentResponse{}, ErrMercadoPagoPaymentNotFound
	}
	latest := res.Results[0]
	return toPaymentResponse(fmt.Sprintf("%d", latest.ID), latest.Status, externalResourceURL(&latest)), nil
}

func (g *MercadoPagoGateway) buildRequest(req entities.PaymentRequest) (map[string]any, error) {
	reqMap := map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"external_reference": req.OrderID,
	}
	payer := map[string]any{"email": strings.TrimSpace(req.Info.Email)}

	switch d := req.Info.Details.(type) {
	case entities.PSEDetails:
		reqMap["payment_method_id"] = "pse"
		reqMap["callback_url"] = g.callbackURL
		reqMap["transaction_details"] = map[string]any{"financial_institution": d.BankCode}
		payer["entity_type"] = entityType(d.UserType)
		payer["identification"] = map[string]any{"type": d.IdentificationType, "number": d.IdentificationNumber}
	case entities.CardDetails:
		if strings.TrimSpace(d.Token) == "" && !g.mockMode {
			return nil, ErrCardTokenRequired
		}
		if brand := cardBrand(d.Number); brand != "" {
			reqMap["payment_method_id"] = brand
		}
		reqMap["token"] = d.Token
		installments := d.Installments
		if installments <= 0 {
			installments = 1
		}
		reqMap["installments"] = installments
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPaymentMethod, req.Info.Method())
	}

	reqMap["payer"] = payer
	return reqMap, nil
}

func (g *MercadoPagoGateway) mockPayment(ctx context.Context, req entities.PaymentRequest) entities.PaymentResponse {
	id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
	resp := entities.PaymentResponse{Success: true, TransactionID: id, Status: "approved"}
	if req.Info.Method() == entities.PaymentMethodPSE {
		resp.Status = "pending"
		resp.PaymentURL = "https://sandbox.mercadopago.com.co/pse/mock?payment_id=" + id
	}
	logger.Info(ctx, "[payment][gateway] mock create success", zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))
	return resp
}

// toPaymentResponse translates Mercado Pago statuses to the backend vocabulary.
func toPaymentResponse(id, status, url string) entities.PaymentResponse {
	resp := entities.PaymentResponse{TransactionID: id, PaymentURL: url}
	switch status {
	case "approved":
		resp.Status, resp.Success = "approved", true
	case "pending", "in_process", "authorized", "in_mediation":
		resp.Status, resp.Success = "pending", true
	case "rejected", "cancelled", "refunded", "charged_back":
		resp.Status = "declined"
	default:
		resp.Status = status
	}
	return resp
}

// externalResourceURL reads transaction_details.external_resource_url, the PSE bank redirect.
func externalResourceURL(resp *payment.Response) string {
	b, err := json.Marshal(resp)
	if err != nil {
		return ""
	}
	var parsed struct {
		TransactionDetails struct {
			ExternalResourceURL string `json:"external_resource_url"`
		} `json:"transaction_details"`
	}
	if err := json.Unmarshal(b, &parsed); err != nil {
		return ""
	}
	return parsed.TransactionDetails.ExternalResourceURL
}

func entityType(t entities.PSEUserType) string {
	if t == entities.PSEUserTypeJuridica {
		return "association"
	}
	return "individual"
}

// mercadoPagoMethodIDs maps detected card brands to Mercado Pago payment_method_id values.
var mercadoPagoMethodIDs = map[usecase.CardType]string{
	usecase.CardTypeVisa:       "visa",
	usecase.CardTypeMastercard: "master",
	usecase.CardTypeAmex:       "amex",
	usecase.CardTypeDiscover:   "discover",
}

func cardBrand(number string) string {
	return mercadoPagoMethodIDs[usecase.DetectCardType(number)]
}
