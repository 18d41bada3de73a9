package payments

import (
	"context"
	"errors"
	"log"
	"strings"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const setupIntentIDPrefix = "seti_"

// StripeProcessor implements the processor port against the Stripe API.
// Payment intents and setup intents are told apart by their id prefix, so
// confirm/cancel/retrieve stay a single call site for the usecases.

type StripeProcessor struct {
	api *client.API
}

var _ interfaces.IProcessorClient = (*StripeProcessor)(nil)

func NewStripeProcessor(secretKey string) (*StripeProcessor, error) {
	if secretKey == "" {
		log.Printf("[processor][stripe] missing secret key")
		return nil, ErrMissingStripeSecretKey
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	log.Printf("[processor][stripe] client initialized")
	return &StripeProcessor{api: api}, nil
}

func (p *StripeProcessor) CreateCustomer(ctx context.Context, email string, metadata map[string]string, idempotencyKey string) (string, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.Context = ctx
	if idempotencyKey != "" {
		params.IdempotencyKey = stripe.String(idempotencyKey)
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	cust, err := p.api.Customers.New(params)
	if err != nil {
		return "", mapStripeError(err)
	}
	log.Printf("[processor][stripe] customer created id=%s", cust.ID)
	return cust.ID, nil
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, in interfaces.CreateIntentParams) (interfaces.ProcessorIntent, error) {
	switch in.Kind {
	case entities.IntentKindPayment:
		return p.createPaymentIntent(ctx, in)
	case entities.IntentKindSetup:
		return p.createSetupIntent(ctx, in)
	}
	return interfaces.ProcessorIntent{}, &interfaces.ProcessorError{Code: "invalid_request", Message: "unknown intent kind " + string(in.Kind)}
}

func (p *StripeProcessor) createPaymentIntent(ctx context.Context, in interfaces.CreateIntentParams) (interfaces.ProcessorIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.Amount),
		Currency: stripe.String(strings.ToLower(in.Currency)),
		Confirm:  stripe.Bool(in.Confirm),
	}
	params.Context = ctx
	if in.CustomerID != "" {
		params.Customer = stripe.String(in.CustomerID)
	}
	if in.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(in.PaymentMethodID)
	}
	if in.CaptureMethod != "" {
		params.CaptureMethod = stripe.String(in.CaptureMethod)
	}
	if in.SetupFutureUsage != "" {
		params.SetupFutureUsage = stripe.String(in.SetupFutureUsage)
	}
	if in.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(in.IdempotencyKey)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return interfaces.ProcessorIntent{}, mapStripeError(err)
	}
	log.Printf("[processor][stripe] payment intent created id=%s status=%s", pi.ID, pi.Status)
	return fromPaymentIntent(pi), nil
}

func (p *StripeProcessor) createSetupIntent(ctx context.Context, in interfaces.CreateIntentParams) (interfaces.ProcessorIntent, error) {
	params := &stripe.SetupIntentParams{
		Confirm: stripe.Bool(in.Confirm),
	}
	params.Context = ctx
	if in.CustomerID != "" {
		params.Customer = stripe.String(in.CustomerID)
	}
	if in.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(in.PaymentMethodID)
	}
	if in.SetupFutureUsage != "" {
		params.Usage = stripe.String(in.SetupFutureUsage)
	}
	if in.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(in.IdempotencyKey)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	si, err := p.api.SetupIntents.New(params)
	if err != nil {
		return interfaces.ProcessorIntent{}, mapStripeError(err)
	}
	log.Printf("[processor][stripe] setup intent created id=%s status=%s", si.ID, si.Status)
	return fromSetupIntent(si), nil
}

func (p *StripeProcessor) ConfirmIntent(ctx context.Context, id string) (interfaces.ProcessorIntent, error) {
	if isSetupIntent(id) {
		params := &stripe.SetupIntentConfirmParams{}
		params.Context = ctx
		si, err := p.api.SetupIntents.Confirm(id, params)
		if err != nil {
			return interfaces.ProcessorIntent{}, mapStripeError(err)
		}
		return fromSetupIntent(si), nil
	}
	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx
	pi, err := p.api.PaymentIntents.Confirm(id, params)
	if err != nil {
		return interfaces.ProcessorIntent{}, mapStripeError(err)
	}
	return fromPaymentIntent(pi), nil
}

func (p *StripeProcessor) CaptureIntent(ctx context.Context, id string, amount int64) (interfaces.ProcessorIntent, error) {
	params := &stripe.PaymentIntentCaptureParams{AmountToCapture: stripe.Int64(amount)}
	params.Context = ctx
	pi, err := p.api.PaymentIntents.Capture(id, params)
	if err != nil {
		return interfaces.ProcessorIntent{}, mapStripeError(err)
	}
	log.Printf("[processor][stripe] captured id=%s status=%s", pi.ID, pi.Status)
	return fromPaymentIntent(pi), nil
}

func (p *StripeProcessor) CancelIntent(ctx context.Context, id string) (interfaces.ProcessorIntent, error) {
	if isSetupIntent(id) {
		params := &stripe.SetupIntentCancelParams{}
		params.Context = ctx
		si, err := p.api.SetupIntents.Cancel(id, params)
		if err != nil {
			return interfaces.ProcessorIntent{}, mapStripeCancelError(err)
		}
		return fromSetupIntent(si), nil
	}
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	pi, err := p.api.PaymentIntents.Cancel(id, params)
	if err != nil {
		return interfaces.ProcessorIntent{}, mapStripeCancelError(err)
	}
	log.Printf("[processor][stripe] canceled id=%s", pi.ID)
	return fromPaymentIntent(pi), nil
}

func (p *StripeProcessor) RetrieveIntent(ctx context.Context, id string) (interfaces.ProcessorIntent, error) {
	if isSetupIntent(id) {
		params := &stripe.SetupIntentParams{}
		params.Context = ctx
		si, err := p.api.SetupIntents.Get(id, params)
		if err != nil {
			return interfaces.ProcessorIntent{}, mapStripeError(err)
		}
		return fromSetupIntent(si), nil
	}
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		return interfaces.ProcessorIntent{}, mapStripeError(err)
	}
	return fromPaymentIntent(pi), nil
}

func (p *StripeProcessor) CreateRefund(ctx context.Context, amount int64, intentID string, metadata map[string]string) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
		Amount:        stripe.Int64(amount),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	r, err := p.api.Refunds.New(params)
	if err != nil {
		return "", mapStripeError(err)
	}
	log.Printf("[processor][stripe] refund created id=%s amount=%d", r.ID, r.Amount)
	return r.ID, nil
}

func (p *StripeProcessor) ListRefunds(ctx context.Context, intentID string) ([]interfaces.ProcessorRefund, error) {
	params := &stripe.RefundListParams{PaymentIntent: stripe.String(intentID)}
	params.Context = ctx
	iter := p.api.Refunds.List(params)

	var out []interfaces.ProcessorRefund
	for iter.Next() {
		r := iter.Refund()
		out = append(out, interfaces.ProcessorRefund{
			ID:       r.ID,
			Amount:   r.Amount,
			Currency: strings.ToUpper(string(r.Currency)),
			Metadata: r.Metadata,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, mapStripeError(err)
	}
	return out, nil
}

func isSetupIntent(id string) bool {
	return strings.HasPrefix(id, setupIntentIDPrefix)
}

func fromPaymentIntent(pi *stripe.PaymentIntent) interfaces.ProcessorIntent {
	out := interfaces.ProcessorIntent{
		ID:               pi.ID,
		Kind:             entities.IntentKindPayment,
		Status:           string(pi.Status),
		ClientSecret:     pi.ClientSecret,
		Amount:           pi.Amount,
		AmountReceived:   pi.AmountReceived,
		Currency:         strings.ToUpper(string(pi.Currency)),
		SetupFutureUsage: string(pi.SetupFutureUsage),
		Metadata:         pi.Metadata,
	}
	if pi.Customer != nil {
		out.CustomerID = pi.Customer.ID
	}
	if pi.PaymentMethod != nil {
		out.PaymentMethodID = pi.PaymentMethod.ID
	}
	return out
}

func fromSetupIntent(si *stripe.SetupIntent) interfaces.ProcessorIntent {
	out := interfaces.ProcessorIntent{
		ID:               si.ID,
		Kind:             entities.IntentKindSetup,
		Status:           string(si.Status),
		ClientSecret:     si.ClientSecret,
		SetupFutureUsage: string(si.Usage),
		Metadata:         si.Metadata,
	}
	if si.Customer != nil {
		out.CustomerID = si.Customer.ID
	}
	if si.PaymentMethod != nil {
		out.PaymentMethodID = si.PaymentMethod.ID
	}
	return out
}

// mapStripeError normalizes SDK errors into the port's ProcessorError;
// "unexpected state" keeps its operation-agnostic meaning so a confirm on
// an already-settled intent is not mistaken for a failed cancel.
func mapStripeError(err error) error {
	var serr *stripe.Error
	if !errors.As(err, &serr) {
		return err
	}
	code := string(serr.Code)
	if code == string(stripe.ErrorCodePaymentIntentUnexpectedState) || code == string(stripe.ErrorCodeSetupIntentUnexpectedState) {
		code = interfaces.ProcessorErrCodeUnexpectedState
	}
	return &interfaces.ProcessorError{Code: code, Message: serr.Msg}
}

// mapStripeCancelError folds "unexpected state" into the not-cancelable
// code; only the cancel call carries that meaning.
func mapStripeCancelError(err error) error {
	mapped := mapStripeError(err)
	var perr *interfaces.ProcessorError
	if errors.As(mapped, &perr) && perr.Code == interfaces.ProcessorErrCodeUnexpectedState {
		perr.Code = interfaces.ProcessorErrCodeNotCancelable
	}
	return mapped
}
