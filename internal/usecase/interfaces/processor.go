package interfaces

import (
	"context"
	"fmt"

	"storegate/internal/domain/entities"
)

// Processor intent statuses as reported by the hosted API.
const (
	IntentStatusRequiresPaymentMethod = "requires_payment_method"
	IntentStatusRequiresConfirmation  = "requires_confirmation"
	IntentStatusRequiresAction        = "requires_action"
	IntentStatusProcessing            = "processing"
	IntentStatusRequiresCapture       = "requires_capture"
	IntentStatusSucceeded             = "succeeded"
	IntentStatusCanceled              = "canceled"
)

// Normalized error codes adapters map their SDK-specific codes onto.
// ProcessorErrCodeNotCancelable means "the intent is already in a terminal
// state that cannot be canceled"; the void flow treats it as soft success.
// ProcessorErrCodeUnexpectedState is the operation-agnostic variant for any
// other call rejected because the intent already moved on; callers re-read
// the intent instead of failing the payment.
const (
	ProcessorErrCodeNotCancelable   = "intent_not_cancelable"
	ProcessorErrCodeUnexpectedState = "intent_unexpected_state"
)

// ProcessorError is a request the processor rejected, with the
// machine-readable code and human message it reported.
type ProcessorError struct {
	Code    string
	Message string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor error (%s): %s", e.Code, e.Message)
}

// ProcessorIntent is the subset of the processor intent object this service
// acts on, for both payment and setup intents.
type ProcessorIntent struct {
	ID               string
	Kind             entities.IntentKind
	Status           string
	ClientSecret     string
	Amount           int64
	AmountReceived   int64
	Currency         string
	CustomerID       string
	PaymentMethodID  string
	SetupFutureUsage string
	Metadata         map[string]string
}

// ProcessorRefund is one refund as listed by the processor.
type ProcessorRefund struct {
	ID       string
	Amount   int64
	Currency string
	Metadata map[string]string
}

// CreateIntentParams carries everything needed to create an intent.
// Amount/Currency are processor units and only apply to the payment kind.
type CreateIntentParams struct {
	Kind             entities.IntentKind
	Amount           int64
	Currency         string
	CustomerID       string
	PaymentMethodID  string
	CaptureMethod    string
	Confirm          bool
	SetupFutureUsage string
	Metadata         map[string]string
	IdempotencyKey   string
}

// IProcessorClient abstracts the hosted payment processor API. Every call is
// a blocking network call; no local lock may be held across one.
type IProcessorClient interface {
	CreateCustomer(ctx context.Context, email string, metadata map[string]string, idempotencyKey string) (string, error)
	CreateIntent(ctx context.Context, params CreateIntentParams) (ProcessorIntent, error)
	ConfirmIntent(ctx context.Context, id string) (ProcessorIntent, error)
	CaptureIntent(ctx context.Context, id string, amount int64) (ProcessorIntent, error)
	CancelIntent(ctx context.Context, id string) (ProcessorIntent, error)
	RetrieveIntent(ctx context.Context, id string) (ProcessorIntent, error)
	CreateRefund(ctx context.Context, amount int64, intentID string, metadata map[string]string) (string, error)
	ListRefunds(ctx context.Context, intentID string) ([]ProcessorRefund, error)
}
