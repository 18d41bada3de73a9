package payments

import (
	"errors"
	"testing"

	"storegate/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v74"
)

func TestMapStripeError(t *testing.T) {
	t.Run("unexpected state keeps its operation-agnostic code", func(t *testing.T) {
		err := mapStripeError(&stripe.Error{Code: stripe.ErrorCodePaymentIntentUnexpectedState, Msg: "already succeeded"})
		var perr *interfaces.ProcessorError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ProcessorError, got %v", err)
		}
		if perr.Code != interfaces.ProcessorErrCodeUnexpectedState {
			t.Fatalf("expected unexpected-state code, got %s", perr.Code)
		}
	})

	t.Run("other codes pass through", func(t *testing.T) {
		err := mapStripeError(&stripe.Error{Code: stripe.ErrorCodeCardDeclined, Msg: "Your card was declined"})
		var perr *interfaces.ProcessorError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ProcessorError, got %v", err)
		}
		if perr.Code != string(stripe.ErrorCodeCardDeclined) {
			t.Fatalf("expected card_declined, got %s", perr.Code)
		}
	})

	t.Run("non-stripe errors are untouched", func(t *testing.T) {
		plain := errors.New("connection reset")
		if got := mapStripeError(plain); got != plain {
			t.Fatalf("expected passthrough, got %v", got)
		}
	})
}

func TestMapStripeCancelError(t *testing.T) {
	err := mapStripeCancelError(&stripe.Error{Code: stripe.ErrorCodeSetupIntentUnexpectedState, Msg: "already canceled"})
	var perr *interfaces.ProcessorError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProcessorError, got %v", err)
	}
	if perr.Code != interfaces.ProcessorErrCodeNotCancelable {
		t.Fatalf("expected not-cancelable code, got %s", perr.Code)
	}

	err = mapStripeCancelError(&stripe.Error{Code: stripe.ErrorCodeCardDeclined, Msg: "declined"})
	if !errors.As(err, &perr) || perr.Code != string(stripe.ErrorCodeCardDeclined) {
		t.Fatalf("expected card_declined passthrough, got %v", err)
	}
}
