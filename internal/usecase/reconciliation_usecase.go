package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"storegate/internal/config"
	"storegate/internal/domain/entities"
	"storegate/internal/domain/money"
	"storegate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrMissingIntentID           = errors.New("missing processor intent id")
	ErrInvalidIntentID           = errors.New("invalid processor intent id format")
	ErrIntentIDMismatch          = errors.New("intent id doesn't match the payment intent bound to the order")
	ErrUnhandledIntentStatus     = errors.New("unhandled processor intent status")
	ErrStateConflict             = errors.New("conflicting payment state transition")
	ErrPaymentMethodRequired     = errors.New("a payment method is required")
	ErrPartialCaptureUnsupported = errors.New("capture amount must equal the authorized amount")
)

const paymentIntentIDPrefix = "pi_"

// IReconciliationEngine maps processor intent lifecycle states onto the
// local payment state machine with idempotent, at-most-once transitions.

type IReconciliationEngine interface {
	ApplyIntentStatus(ctx context.Context, order entities.Order, intent interfaces.ProcessorIntent) error
	ConfirmFromRedirect(ctx context.Context, orderID, intentID string) (entities.Payment, error)
	EnrollFromSetup(ctx context.Context, order entities.Order, intent interfaces.ProcessorIntent) error
	Authorize(ctx context.Context, orderID string, opts IntentOptions) PaymentResult
	Capture(ctx context.Context, amount int64, intentID string) PaymentResult
	Void(ctx context.Context, intentID string) PaymentResult
	Credit(ctx context.Context, amount int64, intentID string, reason string) PaymentResult
	MarkFailed(ctx context.Context, intentID, message string) error
	ListPaymentsByOrder(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type ReconciliationEngine struct {
	cfg       config.Config
	payments  interfaces.IPaymentRepository
	orders    interfaces.IOrderRepository
	wallet    interfaces.IWalletRepository
	logs      interfaces.IPaymentLogRepository
	intents   IIntentStore
	refunds   IRefundSynchronizer
	processor interfaces.IProcessorClient
}

var _ IReconciliationEngine = (*ReconciliationEngine)(nil)

func NewReconciliationEngine(cfg config.Config, payments interfaces.IPaymentRepository, orders interfaces.IOrderRepository, wallet interfaces.IWalletRepository, logs interfaces.IPaymentLogRepository, intents IIntentStore, refunds IRefundSynchronizer, processor interfaces.IProcessorClient) *ReconciliationEngine {
	return &ReconciliationEngine{
		cfg:       cfg,
		payments:  payments,
		orders:    orders,
		wallet:    wallet,
		logs:      logs,
		intents:   intents,
		refunds:   refunds,
		processor: processor,
	}
}

// ApplyIntentStatus applies the transition table for one observed processor
// status. Safe under duplicate webhook delivery and redelivery out of order:
// a payment already in the implied terminal state is a no-op, and terminal
// states are never left.
func (u *ReconciliationEngine) ApplyIntentStatus(ctx context.Context, order entities.Order, intent interfaces.ProcessorIntent) error {
	if intent.ID == "" {
		return ErrMissingIntentID
	}
	payment, err := u.payments.GetByProcessorReference(ctx, intent.ID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		return fmt.Errorf("%w: no payment bound to intent %s", ErrPaymentNotFound, intent.ID)
	}
	if payment.OrderID != order.ID {
		return fmt.Errorf("%w: intent %s belongs to order %s", ErrIntentIDMismatch, intent.ID, payment.OrderID)
	}

	switch intent.Status {
	case interfaces.IntentStatusRequiresPaymentMethod:
		// Nothing advances; the storefront re-renders the payment step.
		return ErrPaymentMethodRequired

	case interfaces.IntentStatusRequiresConfirmation, interfaces.IntentStatusRequiresAction, interfaces.IntentStatusProcessing:
		// Pre-terminal: the order moves one step, the payment waits.
		return u.advanceOrder(ctx, order, order.State.Next())

	case interfaces.IntentStatusRequiresCapture:
		return u.transition(ctx, order, payment, intent, entities.PaymentStatePending, entities.OrderStateConfirm)

	case interfaces.IntentStatusSucceeded:
		if err := u.transition(ctx, order, payment, intent, entities.PaymentStateCompleted, entities.OrderStateComplete); err != nil {
			return err
		}
		// A capture below the authorized amount makes the processor emit
		// an automatic refund for the remainder; pick it up now rather
		// than waiting for its own event.
		if _, err := u.refunds.Sync(ctx, intent.ID); err != nil {
			return err
		}
		return nil

	case interfaces.IntentStatusCanceled:
		return u.transition(ctx, order, payment, intent, entities.PaymentStateVoid, "")

	default:
		if u.cfg.TolerateUnknownStatus {
			log.Printf("[reconcile][usecase] ignoring unknown intent status payment_id=%s status=%s", payment.ID, intent.Status)
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnhandledIntentStatus, intent.Status)
	}
}

// transition moves the payment into target, advances the order when asked,
// and appends an audit entry. Applying the target state twice is a no-op
// with no duplicate entry; a different terminal state already in place is
// resolved by the strict-transitions policy.
func (u *ReconciliationEngine) transition(ctx context.Context, order entities.Order, payment entities.Payment, intent interfaces.ProcessorIntent, target entities.PaymentState, orderTarget entities.OrderState) error {
	if payment.State == target {
		log.Printf("[reconcile][usecase] already %s, no-op payment_id=%s", target, payment.ID)
		return nil
	}
	if payment.State.Terminal() {
		if u.cfg.StrictTransitions {
			return fmt.Errorf("%w: %s -> %s on payment %s", ErrStateConflict, payment.State, target, payment.ID)
		}
		log.Printf("[reconcile][usecase] ignoring backward transition payment_id=%s %s -> %s", payment.ID, payment.State, target)
		return nil
	}

	_, err := u.payments.UpdateState(ctx, payment.ID, payment.State, target)
	if errors.Is(err, interfaces.ErrStateNotCurrent) {
		// A racing delivery got there first; re-read and re-check rather
		// than failing the request for a race the engine already handles.
		current, rerr := u.payments.GetByID(ctx, payment.ID)
		if rerr != nil {
			return rerr
		}
		if current.State == target {
			return nil
		}
		return fmt.Errorf("%w: payment %s moved to %s while applying %s", ErrStateConflict, payment.ID, current.State, target)
	}
	if err != nil {
		return err
	}
	log.Printf("[reconcile][usecase] transition applied payment_id=%s %s -> %s intent_id=%s", payment.ID, payment.State, target, intent.ID)

	if err := u.appendLog(ctx, payment.ID, true, fmt.Sprintf("processor status %s: payment %s", intent.Status, target), nil); err != nil {
		return err
	}
	if err := u.enrollWallet(ctx, order, intent); err != nil {
		return err
	}
	if orderTarget != "" {
		if err := u.advanceOrder(ctx, order, orderTarget); err != nil {
			return err
		}
	}
	return nil
}

// advanceOrder only ever moves forward; re-deliveries that imply an earlier
// step leave the order alone.
func (u *ReconciliationEngine) advanceOrder(ctx context.Context, order entities.Order, target entities.OrderState) error {
	if !order.State.Before(target) {
		return nil
	}
	if _, err := u.orders.UpdateState(ctx, order.ID, target); err != nil {
		return err
	}
	log.Printf("[reconcile][usecase] order advanced order_id=%s %s -> %s", order.ID, order.State, target)
	return nil
}

// enrollWallet saves the confirmed payment method for future use when the
// intent says so and the order belongs to a registered user. Duplicate
// enrollment (webhook redelivery) is swallowed by the storage constraint.
func (u *ReconciliationEngine) enrollWallet(ctx context.Context, order entities.Order, intent interfaces.ProcessorIntent) error {
	if intent.SetupFutureUsage == "" || intent.PaymentMethodID == "" || order.UserID == "" {
		return nil
	}
	err := u.wallet.Enroll(ctx, entities.WalletSource{
		UserID:                   order.UserID,
		ConfigID:                 u.configIDForIntent(intent),
		ProcessorPaymentMethodID: intent.PaymentMethodID,
		ProcessorCustomerID:      intent.CustomerID,
		CreatedAt:                time.Now().UTC(),
	})
	if errors.Is(err, interfaces.ErrDuplicateRecord) {
		return nil
	}
	return err
}

func (u *ReconciliationEngine) configIDForIntent(intent interfaces.ProcessorIntent) string {
	if id, ok := intent.Metadata["payment_method_config_id"]; ok {
		return id
	}
	if len(u.cfg.Processors) > 0 {
		return u.cfg.Processors[0].ID
	}
	return ""
}

// EnrollFromSetup saves the payment method confirmed by a setup intent. A
// setup intent exists to store the method, so enrollment is unconditional
// apart from needing a registered user; redelivery is absorbed by the
// wallet's composite key.
func (u *ReconciliationEngine) EnrollFromSetup(ctx context.Context, order entities.Order, intent interfaces.ProcessorIntent) error {
	if intent.Status != interfaces.IntentStatusSucceeded {
		log.Printf("[reconcile][usecase] setup intent not succeeded, ignoring intent_id=%s status=%s", intent.ID, intent.Status)
		return nil
	}
	if order.UserID == "" || intent.PaymentMethodID == "" {
		return nil
	}
	err := u.wallet.Enroll(ctx, entities.WalletSource{
		UserID:                   order.UserID,
		ConfigID:                 u.configIDForIntent(intent),
		ProcessorPaymentMethodID: intent.PaymentMethodID,
		ProcessorCustomerID:      intent.CustomerID,
		CreatedAt:                time.Now().UTC(),
	})
	if errors.Is(err, interfaces.ErrDuplicateRecord) {
		return nil
	}
	return err
}

// ConfirmFromRedirect handles the browser-driven confirmation return. The
// client-supplied intent id is only trusted as a lookup guard; the status is
// re-read from the processor.
func (u *ReconciliationEngine) ConfirmFromRedirect(ctx context.Context, orderID, intentID string) (entities.Payment, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return entities.Payment{}, ErrMissingIntentID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}
	configID := ""
	if len(u.cfg.Processors) > 0 {
		configID = u.cfg.Processors[0].ID
	}
	inProgress, err := u.payments.GetInProgressByOrder(ctx, orderID, configID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inProgress.ID == "" {
		// The payment may already have converged through a webhook that
		// raced the redirect; that is a success, not an error.
		settled, err := u.payments.GetByProcessorReference(ctx, intentID)
		if err != nil {
			return entities.Payment{}, err
		}
		if settled.ID != "" && settled.OrderID == orderID {
			return settled, nil
		}
		return entities.Payment{}, ErrPaymentNotFound
	}
	if inProgress.ProcessorReference != intentID {
		return entities.Payment{}, fmt.Errorf("%w: got %s, bound %s", ErrIntentIDMismatch, intentID, inProgress.ProcessorReference)
	}

	intent, err := u.processor.RetrieveIntent(ctx, intentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := u.ApplyIntentStatus(ctx, order, intent); err != nil {
		return entities.Payment{}, err
	}
	return u.payments.GetByID(ctx, inProgress.ID)
}

// Authorize runs the inline (non-redirect) flow: create the intent with
// confirm false, then confirm server-side in a second call. Two-step so the
// local payment row exists, bound to the intent id, before confirmation.
// Processor rejections come back as a structured failure, not an error.
func (u *ReconciliationEngine) Authorize(ctx context.Context, orderID string, opts IntentOptions) PaymentResult {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return PaymentResult{Success: false, Message: err.Error()}
	}
	if order.ID == "" {
		return PaymentResult{Success: false, Message: ErrOrderNotFound.Error()}
	}
	if len(u.cfg.Processors) == 0 {
		return PaymentResult{Success: false, Message: "no payment method configuration"}
	}
	cfg := u.cfg.Processors[0]

	intent, err := u.intents.RetrieveOrCreate(ctx, order, cfg, entities.IntentKindPayment, opts)
	if err != nil {
		return u.gatewayFailure(ctx, "", "intent creation failed", err)
	}

	confirmed, err := u.processor.ConfirmIntent(ctx, intent.ID)
	if err != nil {
		var perr *interfaces.ProcessorError
		if errors.As(err, &perr) && perr.Code == interfaces.ProcessorErrCodeUnexpectedState {
			// The intent already moved past confirmation (a webhook or a
			// prior call settled it); the re-read status is the truth.
			log.Printf("[reconcile][usecase] confirm hit a settled intent, re-reading intent_id=%s", intent.ID)
			confirmed, err = u.processor.RetrieveIntent(ctx, intent.ID)
			if err != nil {
				return u.gatewayFailure(ctx, intent.ID, "confirmation failed", err)
			}
		} else {
			if ferr := u.MarkFailed(ctx, intent.ID, "confirmation failed"); ferr != nil {
				log.Printf("[reconcile][usecase] mark-failed after confirm error intent_id=%s err=%v", intent.ID, ferr)
			}
			return u.gatewayFailure(ctx, intent.ID, "confirmation failed", err)
		}
	}
	if err := u.ApplyIntentStatus(ctx, order, confirmed); err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intent.ID}
	}
	raw, _ := json.Marshal(confirmed)
	return PaymentResult{Success: true, Message: "authorized, status " + confirmed.Status, ProcessorReference: intent.ID, RawResponse: raw}
}

// Capture takes the previously authorized funds. Custom partial amounts are
// unsupported: the amount must equal the authorized amount exactly, checked
// in ledger subunits before the processor is called.
func (u *ReconciliationEngine) Capture(ctx context.Context, amount int64, intentID string) PaymentResult {
	payment, result, ok := u.lookupForGatewayOp(ctx, intentID)
	if !ok {
		return result
	}
	if amount != payment.Amount {
		return PaymentResult{Success: false, Message: ErrPartialCaptureUnsupported.Error(), ProcessorReference: intentID}
	}
	processorAmount, err := money.ToProcessorUnits(amount, payment.Currency)
	if err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}

	captured, err := u.processor.CaptureIntent(ctx, intentID, processorAmount)
	if err != nil {
		return u.gatewayFailure(ctx, intentID, "capture failed", err)
	}
	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}
	if err := u.ApplyIntentStatus(ctx, order, captured); err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}
	raw, _ := json.Marshal(captured)
	return PaymentResult{Success: true, Message: "captured, status " + captured.Status, ProcessorReference: intentID, RawResponse: raw}
}

// Void cancels the processor intent. An intent already in a terminal state
// that cannot be canceled is a soft success: not chargeable is the end state
// we wanted.
func (u *ReconciliationEngine) Void(ctx context.Context, intentID string) PaymentResult {
	payment, result, ok := u.lookupForGatewayOp(ctx, intentID)
	if !ok {
		return result
	}

	canceled, err := u.processor.CancelIntent(ctx, intentID)
	if err != nil {
		var perr *interfaces.ProcessorError
		if errors.As(err, &perr) && perr.Code == interfaces.ProcessorErrCodeNotCancelable {
			log.Printf("[reconcile][usecase] void soft success, intent already terminal intent_id=%s", intentID)
			return PaymentResult{Success: true, Message: "intent already in a terminal state", ProcessorReference: intentID}
		}
		return u.gatewayFailure(ctx, intentID, "void failed", err)
	}
	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}
	if err := u.ApplyIntentStatus(ctx, order, canceled); err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}
	return PaymentResult{Success: true, Message: "voided", ProcessorReference: intentID}
}

// Credit refunds part or all of a captured payment. The refund carries the
// skip-sync marker so the synchronizer won't re-import it when its webhook
// echoes back.
func (u *ReconciliationEngine) Credit(ctx context.Context, amount int64, intentID string, reason string) PaymentResult {
	payment, result, ok := u.lookupForGatewayOp(ctx, intentID)
	if !ok {
		return result
	}
	processorAmount, err := money.ToProcessorUnits(amount, payment.Currency)
	if err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}

	refundID, err := u.processor.CreateRefund(ctx, processorAmount, intentID, map[string]string{
		SkipSyncMetadataKey: "true",
	})
	if err != nil {
		return u.gatewayFailure(ctx, intentID, "refund failed", err)
	}

	localRefund := entities.Refund{
		PaymentID:            payment.ID,
		Amount:               amount,
		Currency:             payment.Currency,
		TransactionReference: refundID,
		Reason:               reason,
		CreatedAt:            time.Now().UTC(),
	}
	if err := u.refunds.Record(ctx, localRefund); err != nil && !errors.Is(err, interfaces.ErrDuplicateRecord) {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}
	if err := u.appendLog(ctx, payment.ID, true, fmt.Sprintf("refunded %d (%s)", amount, refundID), nil); err != nil {
		return PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}
	}
	return PaymentResult{Success: true, Message: "refunded " + refundID, ProcessorReference: intentID}
}

// MarkFailed transitions the payment bound to intentID into failed, with the
// same idempotence and policy guards as every other terminal transition.
func (u *ReconciliationEngine) MarkFailed(ctx context.Context, intentID, message string) error {
	payment, err := u.payments.GetByProcessorReference(ctx, intentID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		return fmt.Errorf("%w: no payment bound to intent %s", ErrPaymentNotFound, intentID)
	}
	if payment.State == entities.PaymentStateFailed {
		return nil
	}
	if payment.State.Terminal() {
		if u.cfg.StrictTransitions {
			return fmt.Errorf("%w: %s -> failed on payment %s", ErrStateConflict, payment.State, payment.ID)
		}
		log.Printf("[reconcile][usecase] ignoring failed over terminal payment_id=%s state=%s", payment.ID, payment.State)
		return nil
	}
	if _, err := u.payments.UpdateState(ctx, payment.ID, payment.State, entities.PaymentStateFailed); err != nil {
		if errors.Is(err, interfaces.ErrStateNotCurrent) {
			return nil
		}
		return err
	}
	return u.appendLog(ctx, payment.ID, false, message, nil)
}

func (u *ReconciliationEngine) ListPaymentsByOrder(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	return u.payments.ListByOrder(ctx, orderID)
}

// lookupForGatewayOp validates the intent id shape and resolves the bound
// payment; a malformed id is an integration error and fails fast.
func (u *ReconciliationEngine) lookupForGatewayOp(ctx context.Context, intentID string) (entities.Payment, PaymentResult, bool) {
	if strings.TrimSpace(intentID) == "" {
		return entities.Payment{}, PaymentResult{Success: false, Message: ErrMissingIntentID.Error()}, false
	}
	if !strings.HasPrefix(intentID, paymentIntentIDPrefix) {
		return entities.Payment{}, PaymentResult{Success: false, Message: ErrInvalidIntentID.Error(), ProcessorReference: intentID}, false
	}
	payment, err := u.payments.GetByProcessorReference(ctx, intentID)
	if err != nil {
		return entities.Payment{}, PaymentResult{Success: false, Message: err.Error(), ProcessorReference: intentID}, false
	}
	if payment.ID == "" {
		return entities.Payment{}, PaymentResult{Success: false, Message: ErrPaymentNotFound.Error(), ProcessorReference: intentID}, false
	}
	return payment, PaymentResult{}, true
}

// gatewayFailure converts a processor rejection into a structured failure
// log so the checkout flow can persist it without crashing.
func (u *ReconciliationEngine) gatewayFailure(ctx context.Context, intentID, action string, err error) PaymentResult {
	message := action + ": " + err.Error()
	var raw json.RawMessage
	var perr *interfaces.ProcessorError
	var gerr *GatewayError
	switch {
	case errors.As(err, &perr):
		raw, _ = json.Marshal(map[string]string{"code": perr.Code, "message": perr.Message})
	case errors.As(err, &gerr):
		raw = gerr.Raw
	}
	log.Printf("[reconcile][usecase] gateway failure intent_id=%s action=%s err=%v", intentID, action, err)

	if intentID != "" {
		if payment, gerr := u.payments.GetByProcessorReference(ctx, intentID); gerr == nil && payment.ID != "" {
			if lerr := u.appendLog(ctx, payment.ID, false, message, raw); lerr != nil {
				log.Printf("[reconcile][usecase] failure log append failed payment_id=%s err=%v", payment.ID, lerr)
			}
		}
	}
	return PaymentResult{Success: false, Message: message, ProcessorReference: intentID, RawResponse: raw}
}

func (u *ReconciliationEngine) appendLog(ctx context.Context, paymentID string, success bool, message string, raw json.RawMessage) error {
	return u.logs.Append(ctx, entities.PaymentLogEntry{
		ID:        uuid.NewString(),
		PaymentID: paymentID,
		Success:   success,
		Message:   message,
		Raw:       raw,
		CreatedAt: time.Now().UTC(),
	})
}
