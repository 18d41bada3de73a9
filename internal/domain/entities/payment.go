package entities

import "time"

// PaymentState is the local payment lifecycle driven by processor signals.
//
// Transitions into pending/completed/failed/void are owned by the
// reconciliation usecase and are idempotent: re-applying a terminal state is
// a no-op, and a payment never moves backward out of a terminal state.

type PaymentState string

const (
	PaymentStateCheckout  PaymentState = "checkout"
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCompleted PaymentState = "completed"
	PaymentStateFailed    PaymentState = "failed"
	PaymentStateVoid      PaymentState = "void"
)

// Terminal reports whether the state admits no further transition.
func (s PaymentState) Terminal() bool {
	switch s {
	case PaymentStateCompleted, PaymentStateFailed, PaymentStateVoid:
		return true
	}
	return false
}

// Payment is the local record of a single charge attempt against an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (processor_reference-index): processor_reference
//
// ProcessorReference holds the processor payment-intent id and is set exactly
// once, when the intent is created; the intent object evolves on the
// processor side but the local pointer does not.

type Payment struct {
	ID                 string       `json:"id"`
	OrderID            string       `json:"order_id"`
	ConfigID           string       `json:"payment_method_config_id"`
	Amount             int64        `json:"amount"`
	Currency           string       `json:"currency"`
	ProcessorReference string       `json:"processor_reference"`
	State              PaymentState `json:"state"`
	Source             string       `json:"source,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// InProgress reports whether the payment still holds (or may come to hold)
// funds against its order. Used when a fresh checkout attempt must supersede
// prior work.
func (p Payment) InProgress() bool {
	return p.State == PaymentStateCheckout || p.State == PaymentStatePending
}
