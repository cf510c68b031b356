package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase/interfaces"
)

type processPaymentPayload struct {
	OrderID           string         `json:"order_id"`
	PaymentMethod     string         `json:"payment_method"`
	PaymentData       map[string]any `json:"payment_data"`
	SavePaymentMethod bool           `json:"save_payment_method"`
}

type paymentPayload struct {
	Success       bool       `json:"success"`
	TransactionID flexString `json:"transaction_id"`
	Status        string     `json:"status"`
	PaymentURL    string     `json:"payment_url"`
	Message       string     `json:"message"`
}

func (p paymentPayload) toEntity() entities.PaymentResponse {
	return entities.PaymentResponse{
		Success:       p.Success,
		TransactionID: strings.TrimSpace(string(p.TransactionID)),
		Status:        p.Status,
		PaymentURL:    p.PaymentURL,
		Message:       p.Message,
	}
}

// paymentData flattens the method specific details into the payment_data object.
func paymentData(info entities.PaymentInfo) map[string]any {
	data := map[string]any{"email": strings.TrimSpace(info.Email)}
	switch d := info.Details.(type) {
	case entities.PSEDetails:
		data["bank_code"] = d.BankCode
		data["user_type"] = string(d.UserType)
		data["identification_type"] = d.IdentificationType
		data["identification_number"] = d.IdentificationNumber
	case entities.CardDetails:
		data["card_number"] = strings.ReplaceAll(d.Number, " ", "")
		data["card_holder_name"] = d.HolderName
		data["expiry_month"] = d.ExpiryMonth
		data["expiry_year"] = d.ExpiryYear
		data["cvv"] = d.CVV
		if d.Installments > 0 {
			data["installments"] = d.Installments
		}
	case entities.BankTransferDetails:
		if d.BankCode != "" {
			data["bank_code"] = d.BankCode
		}
		if d.Reference != "" {
			data["reference"] = d.Reference
		}
	}
	return data
}

// ProcessPayment calls POST /payments/process.
func (c *Client) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error) {
	body := processPaymentPayload{
		OrderID:           req.OrderID,
		PaymentMethod:     string(req.Info.Method()),
		PaymentData:       paymentData(req.Info),
		SavePaymentMethod: req.SavePaymentMethod,
	}
	var payload paymentPayload
	if err := c.do(ctx, http.MethodPost, []string{"payments", "process"}, nil, body, &payload, requestOptions{idempotent: true}); err != nil {
		return entities.PaymentResponse{}, err
	}
	return payload.toEntity(), nil
}

// GetPaymentStatus calls GET /payments/status/{order_id}. A 404 is reported as
// interfaces.ErrPaymentNotFound.
func (c *Client) GetPaymentStatus(ctx context.Context, orderID string) (entities.PaymentResponse, error) {
	var payload paymentPayload
	err := c.do(ctx, http.MethodGet, []string{"payments", "status", strings.TrimSpace(orderID)}, nil, nil, &payload, requestOptions{})
	var be *interfaces.BackendError
	if errors.As(err, &be) && be.StatusCode == http.StatusNotFound {
		return entities.PaymentResponse{}, interfaces.ErrPaymentNotFound
	}
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	return payload.toEntity(), nil
}

type paymentMethodPayload struct {
	ID      flexString `json:"id"`
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Enabled *bool      `json:"enabled"`
}

// ListPaymentMethods calls GET /payments/methods. The backend answers either a bare list
// or {"methods": [...]}.
func (c *Client) ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethodOption, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, []string{"payments", "methods"}, nil, nil, &raw, requestOptions{}); err != nil {
		return nil, err
	}

	var list []paymentMethodPayload
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped struct {
			Methods []paymentMethodPayload `json:"methods"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, err
		}
		list = wrapped.Methods
	}

	out := make([]entities.PaymentMethodOption, 0, len(list))
	for _, m := range list {
		enabled := m.Enabled == nil || *m.Enabled
		typ := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(m.Type)))
		if typ == "" {
			typ = entities.PaymentMethod(string(m.ID))
		}
		out = append(out, entities.PaymentMethodOption{
			ID:      string(m.ID),
			Name:    m.Name,
			Type:    typ,
			Enabled: enabled,
		})
	}
	return out, nil
}
