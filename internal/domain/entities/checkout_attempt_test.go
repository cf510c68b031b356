package entities

import (
	"errors"
	"testing"
	"time"
)

func TestCheckoutAttempt_Advance(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("happy path", func(t *testing.T) {
		a := NewCheckoutAttempt("att-1", "cart-1", now)
		for _, s := range []CheckoutStage{StageOrderCreating, StageOrderCreated, StagePaymentProcessing, StageApproved} {
			if err := a.Advance(s, now); err != nil {
				t.Fatalf("advance to %s: %v", s, err)
			}
		}
		if !a.Stage.IsTerminal() {
			t.Fatalf("expected terminal stage, got %s", a.Stage)
		}
		if len(a.History) != 5 {
			t.Fatalf("expected 5 history entries, got %d", len(a.History))
		}
	})

	t.Run("skipping order creation is rejected", func(t *testing.T) {
		a := NewCheckoutAttempt("att-1", "", now)
		err := a.Advance(StagePaymentProcessing, now)
		if !errors.Is(err, ErrInvalidStageTransition) {
			t.Fatalf("expected ErrInvalidStageTransition, got %v", err)
		}
		if a.Stage != StageNotStarted {
			t.Fatalf("stage must not change, got %s", a.Stage)
		}
	})

	t.Run("terminal stage is final", func(t *testing.T) {
		a := NewCheckoutAttempt("att-1", "", now)
		_ = a.Advance(StageError, now)
		if err := a.Advance(StageOrderCreating, now); err == nil {
			t.Fatalf("expected error leaving a terminal stage")
		}
	})
}

func TestStageForStatus(t *testing.T) {
	cases := map[PaymentStatus]CheckoutStage{
		PaymentStatusApproved: StageApproved,
		PaymentStatusPending:  StagePending,
		PaymentStatusDeclined: StageDeclined,
		PaymentStatusError:    StageError,
		"weird":               StageError,
	}
	for in, want := range cases {
		if got := StageForStatus(in); got != want {
			t.Fatalf("StageForStatus(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestPaymentInfo_Method(t *testing.T) {
	info := NewPaymentInfo("a@b.co", PSEDetails{BankCode: "1007"})
	if info.Method() != PaymentMethodPSE || info.RequestedMethod != PaymentMethodPSE {
		t.Fatalf("unexpected method: %+v", info)
	}
	unknown := PaymentInfo{RequestedMethod: "crypto"}
	if unknown.Method() != "crypto" || unknown.Method().IsKnown() {
		t.Fatalf("unexpected method for unknown info")
	}
}

func TestVariantAttributes_Equal(t *testing.T) {
	a := CartLineItem{ProductID: "p1", VariantAttributes: VariantAttributes{"talla": "M"}}
	b := CartLineItem{ProductID: "p1", VariantAttributes: VariantAttributes{"talla": "M"}}
	c := CartLineItem{ProductID: "p1", VariantAttributes: VariantAttributes{"talla": "L"}}
	if !a.SameLine(b) || a.SameLine(c) {
		t.Fatalf("unexpected SameLine results")
	}
	if !(CartLineItem{ProductID: "p2"}).SameLine(CartLineItem{ProductID: "p2", VariantAttributes: VariantAttributes{}}) {
		t.Fatalf("nil and empty variants must match")
	}
}
