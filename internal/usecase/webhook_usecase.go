package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase/interfaces"
)

// ErrVerificationFailed covers every way an inbound event can fail
// verification: bad signature, malformed header or payload, stale
// timestamp. The payload must be discarded without any side effect.
var ErrVerificationFailed = errors.New("webhook verification failed")

// Namespaced event types this service subscribes to. Anything else is
// accepted and ignored.
const (
	EventPaymentIntentSucceeded  = entities.EventTypePrefix + "payment_intent.succeeded"
	EventPaymentIntentCapturable = entities.EventTypePrefix + "payment_intent.amount_capturable_updated"
	EventPaymentIntentFailed     = entities.EventTypePrefix + "payment_intent.payment_failed"
	EventPaymentIntentCanceled   = entities.EventTypePrefix + "payment_intent.canceled"
	EventSetupIntentSucceeded    = entities.EventTypePrefix + "setup_intent.succeeded"
	EventChargeRefunded          = entities.EventTypePrefix + "charge.refunded"
)

// IWebhookProcessor verifies signed processor notifications and dispatches
// them to the reconciliation core.

type IWebhookProcessor interface {
	VerifyAndParse(payload []byte, signatureHeader, secret string, tolerance time.Duration) (*entities.WebhookEvent, error)
	Dispatch(ctx context.Context, event *entities.WebhookEvent) error
}

type WebhookProcessor struct {
	engine   IReconciliationEngine
	refunds  IRefundSynchronizer
	payments interfaces.IPaymentRepository
	orders   interfaces.IOrderRepository
	now      func() time.Time
}

var _ IWebhookProcessor = (*WebhookProcessor)(nil)

func NewWebhookProcessor(engine IReconciliationEngine, refunds IRefundSynchronizer, payments interfaces.IPaymentRepository, orders interfaces.IOrderRepository) *WebhookProcessor {
	return &WebhookProcessor{engine: engine, refunds: refunds, payments: payments, orders: orders, now: time.Now}
}

// wireEvent is the raw processor event envelope.
type wireEvent struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// intentObject is the subset of the intent payload embedded in an event.
type intentObject struct {
	ID               string            `json:"id"`
	Status           string            `json:"status"`
	Amount           int64             `json:"amount"`
	AmountReceived   int64             `json:"amount_received"`
	Currency         string            `json:"currency"`
	Customer         string            `json:"customer"`
	PaymentMethod    string            `json:"payment_method"`
	SetupFutureUsage string            `json:"setup_future_usage"`
	Usage            string            `json:"usage"`
	Metadata         map[string]string `json:"metadata"`
}

// chargeObject carries the one field the refund flow needs.
type chargeObject struct {
	PaymentIntent string `json:"payment_intent"`
}

// VerifyAndParse checks the HMAC signature over the raw payload bytes and
// the timestamp freshness window before anything is decoded for use. Any
// mismatch discards the event; a partially trusted payload never reaches
// dispatch. The signature header format is "t=<unix>,v1=<hex>", signed over
// "<t>.<payload>".
func (u *WebhookProcessor) VerifyAndParse(payload []byte, signatureHeader, secret string, tolerance time.Duration) (*entities.WebhookEvent, error) {
	ts, signatures, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		log.Printf("[webhook][usecase] bad signature header: %v", err)
		return nil, ErrVerificationFailed
	}

	age := u.now().Sub(time.Unix(ts, 0))
	if age > tolerance || age < -tolerance {
		log.Printf("[webhook][usecase] timestamp outside tolerance age=%s", age)
		return nil, ErrVerificationFailed
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	verified := false
	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			verified = true
			break
		}
	}
	if !verified {
		log.Printf("[webhook][usecase] signature mismatch")
		return nil, ErrVerificationFailed
	}

	var raw wireEvent
	if err := json.Unmarshal(payload, &raw); err != nil || raw.Type == "" {
		log.Printf("[webhook][usecase] verified payload failed to parse: %v", err)
		return nil, ErrVerificationFailed
	}

	return &entities.WebhookEvent{
		ID:      raw.ID,
		Type:    entities.EventTypePrefix + raw.Type,
		Created: time.Unix(raw.Created, 0).UTC(),
		Object:  raw.Data.Object,
	}, nil
}

func parseSignatureHeader(header string) (int64, []string, error) {
	var ts int64 = -1
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			parsed, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("bad timestamp %q", kv[1])
			}
			ts = parsed
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if ts < 0 || len(signatures) == 0 {
		return 0, nil, errors.New("missing timestamp or signature")
	}
	return ts, signatures, nil
}

// Dispatch routes a verified event through the closed subscriber table.
// Unknown types are accepted and ignored so new processor event types never
// break delivery.
func (u *WebhookProcessor) Dispatch(ctx context.Context, event *entities.WebhookEvent) error {
	log.Printf("[webhook][usecase] dispatch event_id=%s type=%s", event.ID, event.Type)
	switch event.Type {
	case EventPaymentIntentSucceeded, EventPaymentIntentCapturable, EventPaymentIntentCanceled:
		return u.applyIntentEvent(ctx, event)
	case EventPaymentIntentFailed:
		var obj intentObject
		if err := json.Unmarshal(event.Object, &obj); err != nil {
			return err
		}
		return u.engine.MarkFailed(ctx, obj.ID, "processor event "+event.Type)
	case EventSetupIntentSucceeded:
		return u.applySetupEvent(ctx, event)
	case EventChargeRefunded:
		var obj chargeObject
		if err := json.Unmarshal(event.Object, &obj); err != nil {
			return err
		}
		_, err := u.refunds.Sync(ctx, obj.PaymentIntent)
		return err
	default:
		log.Printf("[webhook][usecase] ignoring event type %s", event.Type)
		return nil
	}
}

func (u *WebhookProcessor) applyIntentEvent(ctx context.Context, event *entities.WebhookEvent) error {
	var obj intentObject
	if err := json.Unmarshal(event.Object, &obj); err != nil {
		return err
	}
	payment, err := u.payments.GetByProcessorReference(ctx, obj.ID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		return fmt.Errorf("%w: no payment bound to intent %s", ErrPaymentNotFound, obj.ID)
	}
	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}
	return u.engine.ApplyIntentStatus(ctx, order, interfaces.ProcessorIntent{
		ID:               obj.ID,
		Kind:             entities.IntentKindPayment,
		Status:           obj.Status,
		Amount:           obj.Amount,
		AmountReceived:   obj.AmountReceived,
		Currency:         obj.Currency,
		CustomerID:       obj.Customer,
		PaymentMethodID:  obj.PaymentMethod,
		SetupFutureUsage: obj.SetupFutureUsage,
		Metadata:         obj.Metadata,
	})
}

// applySetupEvent enrolls the stored payment method for the order's user; a
// setup intent has no payment row to transition.
func (u *WebhookProcessor) applySetupEvent(ctx context.Context, event *entities.WebhookEvent) error {
	var obj intentObject
	if err := json.Unmarshal(event.Object, &obj); err != nil {
		return err
	}
	orderID := obj.Metadata["order_id"]
	if orderID == "" || obj.PaymentMethod == "" {
		log.Printf("[webhook][usecase] setup intent without order binding, ignoring intent_id=%s", obj.ID)
		return nil
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}
	usage := obj.SetupFutureUsage
	if usage == "" {
		usage = obj.Usage
	}
	return u.engine.EnrollFromSetup(ctx, order, interfaces.ProcessorIntent{
		ID:               obj.ID,
		Kind:             entities.IntentKindSetup,
		Status:           obj.Status,
		CustomerID:       obj.Customer,
		PaymentMethodID:  obj.PaymentMethod,
		SetupFutureUsage: usage,
		Metadata:         obj.Metadata,
	})
}
