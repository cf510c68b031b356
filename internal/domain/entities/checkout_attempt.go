package entities

import (
	"errors"
	"fmt"
	"time"
)

// CheckoutStage is a state of a single checkout attempt.
type CheckoutStage string

const (
	StageNotStarted        CheckoutStage = "not_started"
	StageOrderCreating     CheckoutStage = "order_creating"
	StageOrderCreated      CheckoutStage = "order_created"
	StagePaymentProcessing CheckoutStage = "payment_processing"
	StageApproved          CheckoutStage = "approved"
	StagePending           CheckoutStage = "pending"
	StageDeclined          CheckoutStage = "declined"
	StageError             CheckoutStage = "error"
)

var ErrInvalidStageTransition = errors.New("invalid checkout stage transition")

var stageTransitions = map[CheckoutStage][]CheckoutStage{
	StageNotStarted:        {StageOrderCreating, StageError},
	StageOrderCreating:     {StageOrderCreated, StageError},
	StageOrderCreated:      {StagePaymentProcessing, StageError},
	StagePaymentProcessing: {StageApproved, StagePending, StageDeclined, StageError},
}

// IsTerminal reports whether no further transition is allowed.
func (s CheckoutStage) IsTerminal() bool {
	_, ok := stageTransitions[s]
	return !ok
}

// StageForStatus maps a normalized payment status to its terminal stage.
func StageForStatus(status PaymentStatus) CheckoutStage {
	switch status {
	case PaymentStatusApproved:
		return StageApproved
	case PaymentStatusPending:
		return StagePending
	case PaymentStatusDeclined:
		return StageDeclined
	default:
		return StageError
	}
}

// StageTransition records when a stage was entered.
type StageTransition struct {
	Stage CheckoutStage `json:"stage"`
	At    time.Time     `json:"at"`
}

// CheckoutAttempt is the ledger record of one orchestrator run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type CheckoutAttempt struct {
	ID        string            `json:"id"`
	CartID    string            `json:"cart_id,omitempty"`
	OrderID   string            `json:"order_id,omitempty"`
	Method    PaymentMethod     `json:"payment_method"`
	Amount    int64             `json:"amount"`
	Stage     CheckoutStage     `json:"stage"`
	History   []StageTransition `json:"history"`
	Result    *PaymentResult    `json:"result,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewCheckoutAttempt starts an attempt in StageNotStarted.
func NewCheckoutAttempt(id, cartID string, now time.Time) *CheckoutAttempt {
	return &CheckoutAttempt{
		ID:        id,
		CartID:    cartID,
		Stage:     StageNotStarted,
		History:   []StageTransition{{Stage: StageNotStarted, At: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Advance moves the attempt to next, rejecting transitions the state machine forbids.
func (a *CheckoutAttempt) Advance(next CheckoutStage, now time.Time) error {
	for _, allowed := range stageTransitions[a.Stage] {
		if allowed == next {
			a.Stage = next
			a.History = append(a.History, StageTransition{Stage: next, At: now})
			a.UpdatedAt = now
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStageTransition, a.Stage, next)
}
