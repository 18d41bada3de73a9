package response

import (
	"testing"
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:                 "pay-1",
		OrderID:            "order-1",
		Amount:             1999,
		Currency:           "USD",
		State:              entities.PaymentStateCompleted,
		ProcessorReference: "pi_1",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.OrderID != "order-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.State != "completed" || res.ProcessorReference != "pi_1" {
		t.Fatalf("unexpected state fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	list := FromPayments(nil)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", list)
	}
}

func TestFromConfirmation(t *testing.T) {
	res := FromConfirmation(entities.Payment{ID: "pay-1", OrderID: "order-1", State: entities.PaymentStatePending})
	if res.OrderID != "order-1" || res.PaymentID != "pay-1" || res.PaymentState != "pending" {
		t.Fatalf("unexpected confirmation: %+v", res)
	}
}

func TestFromPaymentResult(t *testing.T) {
	res := FromPaymentResult(usecase.PaymentResult{Success: true, Message: "ok", ProcessorReference: "re_1"})
	if !res.Success || res.Message != "ok" || res.ProcessorReference != "re_1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
