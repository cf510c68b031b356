package response

import (
	"time"

	"checkout_core/internal/domain/entities"
	"checkout_core/internal/usecase"
)

type CheckoutResponse struct {
	AttemptID      string                  `json:"attempt_id"`
	Stage          string                  `json:"stage"`
	FailureReason  string                  `json:"failure_reason,omitempty"`
	Reconciliation *ReconciliationResponse `json:"reconciliation,omitempty"`
	Totals         entities.CartTotals     `json:"totals"`
	Shipping       entities.ShippingQuote  `json:"shipping"`
	Result         entities.PaymentResult  `json:"result"`
}

func FromCheckoutOutcome(o usecase.CheckoutOutcome) CheckoutResponse {
	resp := CheckoutResponse{
		AttemptID:     o.AttemptID,
		Stage:         string(o.Stage),
		FailureReason: string(o.FailureReason),
		Totals:        o.Totals,
		Shipping:      o.Shipping,
		Result:        o.Result,
	}
	if o.Reconciliation != nil {
		rec := FromReconciliation(*o.Reconciliation)
		resp.Reconciliation = &rec
	}
	return resp
}

type StageTransitionResponse struct {
	Stage string    `json:"stage"`
	At    time.Time `json:"at"`
}

type CheckoutAttemptResponse struct {
	ID        string                    `json:"id"`
	CartID    string                    `json:"cart_id,omitempty"`
	OrderID   string                    `json:"order_id,omitempty"`
	Method    string                    `json:"payment_method,omitempty"`
	Amount    int64                     `json:"amount"`
	Stage     string                    `json:"stage"`
	History   []StageTransitionResponse `json:"history"`
	Result    *entities.PaymentResult   `json:"result,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

func FromCheckoutAttempt(a entities.CheckoutAttempt) CheckoutAttemptResponse {
	history := make([]StageTransitionResponse, 0, len(a.History))
	for _, h := range a.History {
		history = append(history, StageTransitionResponse{Stage: string(h.Stage), At: h.At})
	}
	return CheckoutAttemptResponse{
		ID:        a.ID,
		CartID:    a.CartID,
		OrderID:   a.OrderID,
		Method:    string(a.Method),
		Amount:    a.Amount,
		Stage:     string(a.Stage),
		History:   history,
		Result:    a.Result,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
