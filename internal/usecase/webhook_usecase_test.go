package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase/interfaces"
	mock_interfaces "storegate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "whsec_test"

func signPayload(t *testing.T, payload []byte, secret string, ts time.Time) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

type stubEngine struct {
	applied  []interfaces.ProcessorIntent
	enrolled []interfaces.ProcessorIntent
	failed   []string
	err      error
}

func (s *stubEngine) ApplyIntentStatus(_ context.Context, _ entities.Order, intent interfaces.ProcessorIntent) error {
	s.applied = append(s.applied, intent)
	return s.err
}

func (s *stubEngine) EnrollFromSetup(_ context.Context, _ entities.Order, intent interfaces.ProcessorIntent) error {
	s.enrolled = append(s.enrolled, intent)
	return s.err
}

func (s *stubEngine) MarkFailed(_ context.Context, intentID, _ string) error {
	s.failed = append(s.failed, intentID)
	return s.err
}

func (s *stubEngine) ConfirmFromRedirect(context.Context, string, string) (entities.Payment, error) {
	return entities.Payment{}, nil
}

func (s *stubEngine) Authorize(context.Context, string, IntentOptions) PaymentResult {
	return PaymentResult{}
}

func (s *stubEngine) Capture(context.Context, int64, string) PaymentResult { return PaymentResult{} }
func (s *stubEngine) Void(context.Context, string) PaymentResult          { return PaymentResult{} }
func (s *stubEngine) Credit(context.Context, int64, string, string) PaymentResult {
	return PaymentResult{}
}

func (s *stubEngine) ListPaymentsByOrder(context.Context, string) ([]entities.Payment, error) {
	return nil, nil
}

func TestWebhookProcessor_VerifyAndParse(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","created":1748779200,"data":{"object":{"id":"pi_1","status":"succeeded"}}}`)

	newProcessor := func() *WebhookProcessor {
		uc := NewWebhookProcessor(&stubEngine{}, &stubRefundSync{}, nil, nil)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("valid signature parses and namespaces the type", func(t *testing.T) {
		uc := newProcessor()
		event, err := uc.VerifyAndParse(payload, signPayload(t, payload, testWebhookSecret, now), testWebhookSecret, 5*time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "evt_1" {
			t.Fatalf("expected evt_1, got %s", event.ID)
		}
		if event.Type != EventPaymentIntentSucceeded {
			t.Fatalf("expected namespaced type, got %s", event.Type)
		}
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		uc := newProcessor()
		header := signPayload(t, payload, testWebhookSecret, now)
		tampered := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","created":1748779200,"data":{"object":{"id":"pi_OTHER","status":"succeeded"}}}`)
		if _, err := uc.VerifyAndParse(tampered, header, testWebhookSecret, 5*time.Minute); !errors.Is(err, ErrVerificationFailed) {
			t.Fatalf("expected ErrVerificationFailed, got %v", err)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		uc := newProcessor()
		header := signPayload(t, payload, "whsec_other", now)
		if _, err := uc.VerifyAndParse(payload, header, testWebhookSecret, 5*time.Minute); !errors.Is(err, ErrVerificationFailed) {
			t.Fatalf("expected ErrVerificationFailed, got %v", err)
		}
	})

	t.Run("stale timestamp is rejected", func(t *testing.T) {
		uc := newProcessor()
		header := signPayload(t, payload, testWebhookSecret, now.Add(-10*time.Minute))
		if _, err := uc.VerifyAndParse(payload, header, testWebhookSecret, 5*time.Minute); !errors.Is(err, ErrVerificationFailed) {
			t.Fatalf("expected ErrVerificationFailed, got %v", err)
		}
	})

	t.Run("future timestamp is rejected", func(t *testing.T) {
		uc := newProcessor()
		header := signPayload(t, payload, testWebhookSecret, now.Add(10*time.Minute))
		if _, err := uc.VerifyAndParse(payload, header, testWebhookSecret, 5*time.Minute); !errors.Is(err, ErrVerificationFailed) {
			t.Fatalf("expected ErrVerificationFailed, got %v", err)
		}
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		uc := newProcessor()
		for _, header := range []string{"", "v1=abc", "t=notanumber,v1=abc", "t=123"} {
			if _, err := uc.VerifyAndParse(payload, header, testWebhookSecret, 5*time.Minute); !errors.Is(err, ErrVerificationFailed) {
				t.Fatalf("header %q: expected ErrVerificationFailed, got %v", header, err)
			}
		}
	})

	t.Run("one valid signature among several passes", func(t *testing.T) {
		uc := newProcessor()
		ts := strconv.FormatInt(now.Unix(), 10)
		valid := strings.TrimPrefix(signPayload(t, payload, testWebhookSecret, now), "t="+ts+",")
		header := "t=" + ts + ",v1=deadbeef," + valid
		if _, err := uc.VerifyAndParse(payload, header, testWebhookSecret, 5*time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("verified but unparsable payload is rejected", func(t *testing.T) {
		uc := newProcessor()
		junk := []byte(`not json at all`)
		header := signPayload(t, junk, testWebhookSecret, now)
		if _, err := uc.VerifyAndParse(junk, header, testWebhookSecret, 5*time.Minute); !errors.Is(err, ErrVerificationFailed) {
			t.Fatalf("expected ErrVerificationFailed, got %v", err)
		}
	})
}

func TestWebhookProcessor_Dispatch(t *testing.T) {
	t.Run("intent event routes through the engine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engine := &stubEngine{}
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookProcessor(engine, &stubRefundSync{}, payments, orders)

		payments.EXPECT().GetByProcessorReference(gomock.Any(), "pi_1").Return(chkPayment(entities.PaymentStatePending), nil)
		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(chkOrder(), nil)

		event := &entities.WebhookEvent{
			ID:     "evt_1",
			Type:   EventPaymentIntentSucceeded,
			Object: []byte(`{"id":"pi_1","status":"succeeded","amount":2000,"amount_received":1500,"currency":"USD","payment_method":"pm_1"}`),
		}
		if err := uc.Dispatch(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(engine.applied) != 1 {
			t.Fatalf("expected one applied intent, got %d", len(engine.applied))
		}
		got := engine.applied[0]
		if got.ID != "pi_1" || got.Status != "succeeded" || got.AmountReceived != 1500 || got.PaymentMethodID != "pm_1" {
			t.Fatalf("unexpected intent: %+v", got)
		}
	})

	t.Run("payment failed event marks the payment failed", func(t *testing.T) {
		engine := &stubEngine{}
		uc := NewWebhookProcessor(engine, &stubRefundSync{}, nil, nil)

		event := &entities.WebhookEvent{
			Type:   EventPaymentIntentFailed,
			Object: []byte(`{"id":"pi_1","status":"requires_payment_method"}`),
		}
		if err := uc.Dispatch(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(engine.failed) != 1 || engine.failed[0] != "pi_1" {
			t.Fatalf("expected MarkFailed for pi_1, got %v", engine.failed)
		}
	})

	t.Run("setup intent event enrolls via its order metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engine := &stubEngine{}
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookProcessor(engine, &stubRefundSync{}, nil, orders)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(chkOrder(), nil)

		event := &entities.WebhookEvent{
			Type:   EventSetupIntentSucceeded,
			Object: []byte(`{"id":"seti_1","status":"succeeded","payment_method":"pm_1","usage":"off_session","metadata":{"order_id":"order-1"}}`),
		}
		if err := uc.Dispatch(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(engine.enrolled) != 1 {
			t.Fatalf("expected one enrollment, got %d", len(engine.enrolled))
		}
		if engine.enrolled[0].SetupFutureUsage != "off_session" {
			t.Fatalf("expected usage fallback, got %q", engine.enrolled[0].SetupFutureUsage)
		}
	})

	t.Run("setup intent without order binding is ignored", func(t *testing.T) {
		engine := &stubEngine{}
		uc := NewWebhookProcessor(engine, &stubRefundSync{}, nil, nil)

		event := &entities.WebhookEvent{
			Type:   EventSetupIntentSucceeded,
			Object: []byte(`{"id":"seti_1","status":"succeeded","payment_method":"pm_1"}`),
		}
		if err := uc.Dispatch(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(engine.enrolled) != 0 {
			t.Fatalf("expected no enrollment, got %d", len(engine.enrolled))
		}
	})

	t.Run("charge refunded event triggers a sync", func(t *testing.T) {
		refunds := &stubRefundSync{}
		uc := NewWebhookProcessor(&stubEngine{}, refunds, nil, nil)

		event := &entities.WebhookEvent{
			Type:   EventChargeRefunded,
			Object: []byte(`{"payment_intent":"pi_1"}`),
		}
		if err := uc.Dispatch(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(refunds.synced) != 1 || refunds.synced[0] != "pi_1" {
			t.Fatalf("expected sync for pi_1, got %v", refunds.synced)
		}
	})

	t.Run("unknown event type is accepted and ignored", func(t *testing.T) {
		engine := &stubEngine{}
		refunds := &stubRefundSync{}
		uc := NewWebhookProcessor(engine, refunds, nil, nil)

		event := &entities.WebhookEvent{Type: entities.EventTypePrefix + "charge.dispute.created", Object: []byte(`{}`)}
		if err := uc.Dispatch(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(engine.applied)+len(engine.failed)+len(engine.enrolled)+len(refunds.synced) != 0 {
			t.Fatal("unknown event must not reach any subscriber")
		}
	})
}
