package usecase

import (
	"context"
	"errors"
	"testing"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase/interfaces"
	mock_interfaces "storegate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type intentStoreMocks struct {
	paymentIntents *mock_interfaces.MockIIntentRepository
	setupIntents   *mock_interfaces.MockIIntentRepository
	payments       *mock_interfaces.MockIPaymentRepository
	customers      *mock_interfaces.MockICustomerRepository
	processor      *mock_interfaces.MockIProcessorClient
}

func newIntentStore(ctrl *gomock.Controller) (*IntentStore, intentStoreMocks) {
	m := intentStoreMocks{
		paymentIntents: mock_interfaces.NewMockIIntentRepository(ctrl),
		setupIntents:   mock_interfaces.NewMockIIntentRepository(ctrl),
		payments:       mock_interfaces.NewMockIPaymentRepository(ctrl),
		customers:      mock_interfaces.NewMockICustomerRepository(ctrl),
		processor:      mock_interfaces.NewMockIProcessorClient(ctrl),
	}
	registry := NewCustomerRegistry(m.customers, m.processor)
	return NewIntentStore(m.paymentIntents, m.setupIntents, m.payments, registry, m.processor), m
}

var (
	testOrder = entities.Order{
		ID:       "order-1",
		State:    entities.OrderStatePayment,
		Total:    1999,
		Currency: "USD",
		UserID:   "user-1",
		Email:    "buyer@example.com",
	}
	testConfig = entities.PaymentMethodConfig{ID: "cfg-1", CaptureMethod: "manual"}
)

func TestIntentStore_RetrieveOrCreate(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newIntentStore(ctrl)

		_, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, "subscription", IntentOptions{})
		if !errors.Is(err, ErrUnknownIntentKind) {
			t.Fatalf("expected ErrUnknownIntentKind, got %v", err)
		}
	})

	t.Run("existing binding is re-read from the processor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").
			Return(entities.Intent{OrderID: "order-1", ConfigID: "cfg-1", ProcessorIntentID: "pi_existing"}, nil)
		m.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_existing").
			Return(interfaces.ProcessorIntent{ID: "pi_existing", Status: interfaces.IntentStatusRequiresConfirmation}, nil)

		intent, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ID != "pi_existing" {
			t.Fatalf("expected pi_existing, got %s", intent.ID)
		}
	})

	t.Run("canceled binding is superseded by a fresh intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").
			Return(entities.Intent{OrderID: "order-1", ConfigID: "cfg-1", ProcessorIntentID: "pi_dead"}, nil)
		m.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_dead").
			Return(interfaces.ProcessorIntent{ID: "pi_dead", Status: interfaces.IntentStatusCanceled}, nil)
		stale := entities.Payment{ID: "pay-dead", OrderID: "order-1", State: entities.PaymentStateCheckout, ProcessorReference: "pi_dead"}
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(stale, nil)
		m.processor.EXPECT().CancelIntent(gomock.Any(), "pi_dead").
			Return(interfaces.ProcessorIntent{}, &interfaces.ProcessorError{Code: interfaces.ProcessorErrCodeNotCancelable, Message: "already canceled"})
		m.payments.EXPECT().UpdateState(gomock.Any(), "pay-dead", entities.PaymentStateCheckout, entities.PaymentStateVoid).
			Return(entities.Payment{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params interfaces.CreateIntentParams) (interfaces.ProcessorIntent, error) {
				if params.IdempotencyKey != "intent-payment-cfg-1-order-1-after-pi_dead" {
					t.Fatalf("unexpected idempotency key %s", params.IdempotencyKey)
				}
				return interfaces.ProcessorIntent{ID: "pi_fresh", Status: interfaces.IntentStatusRequiresPaymentMethod, ClientSecret: "pi_fresh_secret"}, nil
			})
		m.paymentIntents.EXPECT().Replace(gomock.Any(), gomock.Any(), "pi_dead").DoAndReturn(
			func(_ context.Context, i entities.Intent, _ string) error {
				if i.ProcessorIntentID != "pi_fresh" || i.BindingKey() != "cfg-1#order-1" {
					t.Fatalf("unexpected replacement binding: %+v", i)
				}
				return nil
			})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.ProcessorReference != "pi_fresh" || p.State != entities.PaymentStateCheckout {
				t.Fatalf("unexpected payment row: %+v", p)
			}
			return p, nil
		})

		intent, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ID != "pi_fresh" {
			t.Fatalf("expected the replacement intent, got %s", intent.ID)
		}
	})

	t.Run("supersede race serves the rival replacement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").
			Return(entities.Intent{OrderID: "order-1", ConfigID: "cfg-1", ProcessorIntentID: "pi_dead"}, nil)
		m.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_dead").
			Return(interfaces.ProcessorIntent{ID: "pi_dead", Status: interfaces.IntentStatusCanceled}, nil)
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(entities.Payment{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(interfaces.ProcessorIntent{ID: "pi_fresh"}, nil)
		m.paymentIntents.EXPECT().Replace(gomock.Any(), gomock.Any(), "pi_dead").
			Return(interfaces.ErrStateNotCurrent)
		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").
			Return(entities.Intent{ProcessorIntentID: "pi_rival"}, nil)
		m.processor.EXPECT().CancelIntent(gomock.Any(), "pi_fresh").
			Return(interfaces.ProcessorIntent{ID: "pi_fresh", Status: interfaces.IntentStatusCanceled}, nil)
		m.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_rival").
			Return(interfaces.ProcessorIntent{ID: "pi_rival"}, nil)

		intent, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ID != "pi_rival" {
			t.Fatalf("expected the rival intent, got %s", intent.ID)
		}
	})

	t.Run("first use creates intent and payment row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").Return(entities.Intent{}, nil)
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(entities.Payment{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params interfaces.CreateIntentParams) (interfaces.ProcessorIntent, error) {
				if params.Kind != entities.IntentKindPayment {
					t.Fatalf("expected payment kind, got %s", params.Kind)
				}
				if params.Amount != 1999 || params.Currency != "USD" {
					t.Fatalf("unexpected amount/currency: %d %s", params.Amount, params.Currency)
				}
				if params.Confirm {
					t.Fatal("intent creation must not combine confirmation")
				}
				if params.CaptureMethod != "manual" {
					t.Fatalf("expected manual capture, got %s", params.CaptureMethod)
				}
				if params.Metadata["order_id"] != "order-1" {
					t.Fatalf("missing order metadata: %v", params.Metadata)
				}
				if params.IdempotencyKey != "intent-payment-cfg-1-order-1" {
					t.Fatalf("unexpected idempotency key %s", params.IdempotencyKey)
				}
				return interfaces.ProcessorIntent{ID: "pi_new", Status: interfaces.IntentStatusRequiresPaymentMethod, ClientSecret: "pi_new_secret"}, nil
			})
		m.paymentIntents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i entities.Intent) error {
			if i.ProcessorIntentID != "pi_new" || i.BindingKey() != "cfg-1#order-1" {
				t.Fatalf("unexpected binding: %+v", i)
			}
			return nil
		})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.State != entities.PaymentStateCheckout {
				t.Fatalf("expected checkout state, got %s", p.State)
			}
			if p.ProcessorReference != "pi_new" || p.Amount != 1999 {
				t.Fatalf("unexpected payment row: %+v", p)
			}
			return p, nil
		})

		intent, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ClientSecret != "pi_new_secret" {
			t.Fatalf("expected client secret, got %q", intent.ClientSecret)
		}
	})

	t.Run("stale in-progress payment is voided first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		stale := entities.Payment{ID: "pay-old", OrderID: "order-1", State: entities.PaymentStatePending, ProcessorReference: "pi_old"}
		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").Return(entities.Intent{}, nil)
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(stale, nil)
		m.processor.EXPECT().CancelIntent(gomock.Any(), "pi_old").
			Return(interfaces.ProcessorIntent{ID: "pi_old", Status: interfaces.IntentStatusCanceled}, nil)
		m.payments.EXPECT().UpdateState(gomock.Any(), "pay-old", entities.PaymentStatePending, entities.PaymentStateVoid).
			Return(entities.Payment{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(interfaces.ProcessorIntent{ID: "pi_new"}, nil)
		m.paymentIntents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

		if _, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stale void tolerates not-cancelable intents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		stale := entities.Payment{ID: "pay-old", OrderID: "order-1", State: entities.PaymentStateCheckout, ProcessorReference: "pi_old"}
		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").Return(entities.Intent{}, nil)
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(stale, nil)
		m.processor.EXPECT().CancelIntent(gomock.Any(), "pi_old").
			Return(interfaces.ProcessorIntent{}, &interfaces.ProcessorError{Code: interfaces.ProcessorErrCodeNotCancelable, Message: "already succeeded"})
		m.payments.EXPECT().UpdateState(gomock.Any(), "pay-old", entities.PaymentStateCheckout, entities.PaymentStateVoid).
			Return(entities.Payment{}, interfaces.ErrStateNotCurrent)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(interfaces.ProcessorIntent{ID: "pi_new"}, nil)
		m.paymentIntents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

		if _, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost binding race cancels the orphan and serves the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").Return(entities.Intent{}, nil)
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(entities.Payment{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(interfaces.ProcessorIntent{ID: "pi_orphan"}, nil)
		m.paymentIntents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(interfaces.ErrDuplicateRecord)
		m.processor.EXPECT().CancelIntent(gomock.Any(), "pi_orphan").
			Return(interfaces.ProcessorIntent{ID: "pi_orphan", Status: interfaces.IntentStatusCanceled}, nil)
		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").
			Return(entities.Intent{ProcessorIntentID: "pi_winner"}, nil)
		m.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_winner").
			Return(interfaces.ProcessorIntent{ID: "pi_winner"}, nil)

		intent, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ID != "pi_winner" {
			t.Fatalf("expected winner intent, got %s", intent.ID)
		}
	})

	t.Run("binding race on an identical intent keeps it alive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").Return(entities.Intent{}, nil)
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(entities.Payment{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(interfaces.ProcessorIntent{ID: "pi_shared", ClientSecret: "pi_shared_secret"}, nil)
		m.paymentIntents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(interfaces.ErrDuplicateRecord)
		// The racer bound the same intent: the idempotency key collapsed
		// both creations onto one processor object, which must not be
		// canceled.
		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").
			Return(entities.Intent{ProcessorIntentID: "pi_shared"}, nil)

		intent, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ID != "pi_shared" {
			t.Fatalf("expected the shared intent, got %s", intent.ID)
		}
	})

	t.Run("setup kind skips amount and payment row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.setupIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").Return(entities.Intent{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params interfaces.CreateIntentParams) (interfaces.ProcessorIntent, error) {
				if params.Amount != 0 || params.Currency != "" {
					t.Fatalf("setup intent must not carry an amount: %+v", params)
				}
				return interfaces.ProcessorIntent{ID: "seti_1", Kind: entities.IntentKindSetup}, nil
			})
		m.setupIntents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		intent, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindSetup, IntentOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ID != "seti_1" {
			t.Fatalf("expected seti_1, got %s", intent.ID)
		}
	})

	t.Run("processor rejection becomes a gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIntentStore(ctrl)

		m.paymentIntents.EXPECT().GetByOrder(gomock.Any(), "cfg-1", "order-1").Return(entities.Intent{}, nil)
		m.payments.EXPECT().GetInProgressByOrder(gomock.Any(), "order-1", "cfg-1").Return(entities.Payment{}, nil)
		m.customers.EXPECT().GetBySource(gomock.Any(), "cfg-1", gomock.Any()).
			Return(entities.Customer{ProcessorCustomerID: "cus_1"}, nil)
		m.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(interfaces.ProcessorIntent{}, &interfaces.ProcessorError{Code: "amount_too_small", Message: "Amount below minimum"})

		_, err := uc.RetrieveOrCreate(context.Background(), testOrder, testConfig, entities.IntentKindPayment, IntentOptions{})
		var gwErr *GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gwErr.Code != "amount_too_small" {
			t.Fatalf("expected amount_too_small, got %s", gwErr.Code)
		}
	})
}
