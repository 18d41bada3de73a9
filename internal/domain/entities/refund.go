package entities

import "time"

// RefundReasonImported marks refunds discovered on the processor side and
// pulled in by the synchronizer, as opposed to refunds issued locally.
const RefundReasonImported = "imported from payment processor"

// Refund is a local refund record against a payment.
//
// Storage model (DynamoDB):
//   - PK: transaction_reference
//   - GSI1 (payment_id-index): payment_id
//
// TransactionReference carries the processor refund id and is the
// de-duplication key: the synchronizer relies on the PK uniqueness to make
// replayed refund events create at most one local row.

type Refund struct {
	PaymentID            string    `json:"payment_id"`
	Amount               int64     `json:"amount"`
	Currency             string    `json:"currency"`
	TransactionReference string    `json:"transaction_reference"`
	Reason               string    `json:"reason"`
	CreatedAt            time.Time `json:"created_at"`
}
