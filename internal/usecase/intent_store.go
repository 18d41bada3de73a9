package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/domain/money"
	"storegate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrIntentRaceLost    = errors.New("intent created concurrently but row unreadable")
	ErrUnknownIntentKind = errors.New("unknown intent kind")
)

// IntentOptions tunes intent creation for one checkout attempt.
type IntentOptions struct {
	// PaymentMethodID is the opaque tokenized payment method reference
	// collected by the client-side widget, when already known.
	PaymentMethodID string
}

// IIntentStore binds orders to processor intents, one live intent per
// (order, config, kind).

type IIntentStore interface {
	RetrieveOrCreate(ctx context.Context, order entities.Order, cfg entities.PaymentMethodConfig, kind entities.IntentKind, opts IntentOptions) (interfaces.ProcessorIntent, error)
}

type IntentStore struct {
	paymentIntents interfaces.IIntentRepository
	setupIntents   interfaces.IIntentRepository
	payments       interfaces.IPaymentRepository
	customers      ICustomerRegistry
	processor      interfaces.IProcessorClient
}

var _ IIntentStore = (*IntentStore)(nil)

func NewIntentStore(paymentIntents, setupIntents interfaces.IIntentRepository, payments interfaces.IPaymentRepository, customers ICustomerRegistry, processor interfaces.IProcessorClient) *IntentStore {
	return &IntentStore{
		paymentIntents: paymentIntents,
		setupIntents:   setupIntents,
		payments:       payments,
		customers:      customers,
		processor:      processor,
	}
}

func (u *IntentStore) repoFor(kind entities.IntentKind) (interfaces.IIntentRepository, error) {
	switch kind {
	case entities.IntentKindPayment:
		return u.paymentIntents, nil
	case entities.IntentKindSetup:
		return u.setupIntents, nil
	}
	return nil, ErrUnknownIntentKind
}

// RetrieveOrCreate returns the processor intent bound to (order, config,
// kind), creating it on first use. While the bound intent is alive every
// later call is a pure read against the processor; a canceled binding
// (admin void, processor-side expiry) is superseded by a fresh intent via a
// compare-and-swap on the stored processor intent id.
//
// Capture is always manual and confirmation is never combined with creation:
// funds are only taken after local order advancement confirms readiness, and
// a payment row must exist before any confirmation so a webhook racing the
// confirm call has something to attach to.
func (u *IntentStore) RetrieveOrCreate(ctx context.Context, order entities.Order, cfg entities.PaymentMethodConfig, kind entities.IntentKind, opts IntentOptions) (interfaces.ProcessorIntent, error) {
	repo, err := u.repoFor(kind)
	if err != nil {
		return interfaces.ProcessorIntent{}, err
	}

	existing, err := repo.GetByOrder(ctx, cfg.ID, order.ID)
	if err != nil {
		return interfaces.ProcessorIntent{}, err
	}
	if existing.ProcessorIntentID != "" {
		bound, err := u.processor.RetrieveIntent(ctx, existing.ProcessorIntentID)
		if err != nil {
			return interfaces.ProcessorIntent{}, err
		}
		if bound.Status != interfaces.IntentStatusCanceled {
			return bound, nil
		}
		log.Printf("[intent][usecase] bound intent canceled order_id=%s processor_intent_id=%s, superseding", order.ID, existing.ProcessorIntentID)
		return u.createAndBind(ctx, repo, order, cfg, kind, opts, existing.ProcessorIntentID)
	}
	return u.createAndBind(ctx, repo, order, cfg, kind, opts, "")
}

// createAndBind creates a processor intent and binds it to (order, config,
// kind). An empty priorIntentID means first use (conditional insert); a
// non-empty one replaces a dead binding with a compare-and-swap on the
// stored id.
func (u *IntentStore) createAndBind(ctx context.Context, repo interfaces.IIntentRepository, order entities.Order, cfg entities.PaymentMethodConfig, kind entities.IntentKind, opts IntentOptions, priorIntentID string) (interfaces.ProcessorIntent, error) {
	// A fresh checkout attempt supersedes prior work: any in-progress
	// payment for this (order, config) is voided before a new intent may
	// fund the same order.
	if kind == entities.IntentKindPayment {
		if err := u.voidStalePayment(ctx, order, cfg); err != nil {
			return interfaces.ProcessorIntent{}, err
		}
	}

	customerID, err := u.customers.FindOrCreateCustomer(ctx, cfg, customerSourceFor(order))
	if err != nil {
		return interfaces.ProcessorIntent{}, err
	}

	// The supersede attempt needs its own idempotency key, keyed on the
	// dead intent: the base key would hand back that same dead intent.
	idempotencyKey := "intent-" + string(kind) + "-" + cfg.ID + "-" + order.ID
	if priorIntentID != "" {
		idempotencyKey += "-after-" + priorIntentID
	}

	params := interfaces.CreateIntentParams{
		Kind:             kind,
		CustomerID:       customerID,
		PaymentMethodID:  opts.PaymentMethodID,
		CaptureMethod:    cfg.CaptureMethod,
		Confirm:          false,
		SetupFutureUsage: string(cfg.FutureUsage),
		Metadata:         map[string]string{"order_id": order.ID},
		IdempotencyKey:   idempotencyKey,
	}
	if kind == entities.IntentKindPayment {
		amount, err := money.ToProcessorUnits(order.Total, order.Currency)
		if err != nil {
			return interfaces.ProcessorIntent{}, err
		}
		params.Amount = amount
		params.Currency = order.Currency
	}

	intent, err := u.processor.CreateIntent(ctx, params)
	if err != nil {
		var perr *interfaces.ProcessorError
		if errors.As(err, &perr) {
			return interfaces.ProcessorIntent{}, &GatewayError{Code: perr.Code, Message: perr.Message}
		}
		return interfaces.ProcessorIntent{}, err
	}
	log.Printf("[intent][usecase] created kind=%s order_id=%s processor_intent_id=%s", kind, order.ID, intent.ID)

	row := entities.Intent{
		OrderID:           order.ID,
		ConfigID:          cfg.ID,
		Kind:              kind,
		ProcessorIntentID: intent.ID,
		CreatedAt:         time.Now().UTC(),
	}
	if priorIntentID == "" {
		err = repo.Create(ctx, row)
	} else {
		err = repo.Replace(ctx, row, priorIntentID)
	}
	if errors.Is(err, interfaces.ErrDuplicateRecord) || errors.Is(err, interfaces.ErrStateNotCurrent) {
		// A racing request bound first. When the processor idempotency key
		// collapsed both requests onto the same intent, the winner's intent
		// is ours too; otherwise ours is an orphan to cancel best-effort.
		winner, rerr := repo.GetByOrder(ctx, cfg.ID, order.ID)
		if rerr != nil {
			return interfaces.ProcessorIntent{}, rerr
		}
		if winner.ProcessorIntentID == intent.ID {
			log.Printf("[intent][usecase] lost binding race to an identical intent order_id=%s processor_intent_id=%s", order.ID, intent.ID)
			return intent, nil
		}
		log.Printf("[intent][usecase] lost binding race order_id=%s, canceling orphan %s", order.ID, intent.ID)
		if _, cerr := u.processor.CancelIntent(ctx, intent.ID); cerr != nil {
			log.Printf("[intent][usecase] orphan cancel failed intent_id=%s err=%v", intent.ID, cerr)
		}
		if winner.ProcessorIntentID == "" || winner.ProcessorIntentID == priorIntentID {
			return interfaces.ProcessorIntent{}, ErrIntentRaceLost
		}
		return u.processor.RetrieveIntent(ctx, winner.ProcessorIntentID)
	}
	if err != nil {
		return interfaces.ProcessorIntent{}, err
	}

	if kind == entities.IntentKindPayment {
		now := time.Now().UTC()
		if _, err := u.payments.Create(ctx, entities.Payment{
			ID:                 uuid.NewString(),
			OrderID:            order.ID,
			ConfigID:           cfg.ID,
			Amount:             order.Total,
			Currency:           order.Currency,
			ProcessorReference: intent.ID,
			State:              entities.PaymentStateCheckout,
			Source:             opts.PaymentMethodID,
			CreatedAt:          now,
			UpdatedAt:          now,
		}); err != nil {
			return interfaces.ProcessorIntent{}, err
		}
	}
	return intent, nil
}

func (u *IntentStore) voidStalePayment(ctx context.Context, order entities.Order, cfg entities.PaymentMethodConfig) error {
	stale, err := u.payments.GetInProgressByOrder(ctx, order.ID, cfg.ID)
	if err != nil {
		return err
	}
	if stale.ID == "" {
		return nil
	}
	log.Printf("[intent][usecase] voiding stale payment order_id=%s payment_id=%s state=%s", order.ID, stale.ID, stale.State)
	if stale.ProcessorReference != "" {
		if _, err := u.processor.CancelIntent(ctx, stale.ProcessorReference); err != nil {
			var perr *interfaces.ProcessorError
			if !errors.As(err, &perr) || perr.Code != interfaces.ProcessorErrCodeNotCancelable {
				return err
			}
			// Already terminal on the processor side; the desired end
			// state (not chargeable) is achieved.
			log.Printf("[intent][usecase] stale intent already terminal intent_id=%s", stale.ProcessorReference)
		}
	}
	if _, err := u.payments.UpdateState(ctx, stale.ID, stale.State, entities.PaymentStateVoid); err != nil && !errors.Is(err, interfaces.ErrStateNotCurrent) {
		return err
	}
	return nil
}

// customerSourceFor picks the registered user when the order has one, and
// falls back to a guest-order identity otherwise.
func customerSourceFor(order entities.Order) entities.CustomerSource {
	if order.UserID != "" {
		return entities.CustomerSource{Type: entities.CustomerSourceUser, ID: order.UserID, Email: order.Email}
	}
	return entities.CustomerSource{Type: entities.CustomerSourceOrder, ID: order.ID, Email: order.Email}
}
