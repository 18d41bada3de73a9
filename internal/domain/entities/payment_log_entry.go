package entities

import (
	"encoding/json"
	"time"
)

// PaymentLogEntry is one line of the append-only audit trail kept per
// payment: applied transitions, structured gateway failures, imported
// refunds. Raw keeps the triggering processor payload for traceability.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id

type PaymentLogEntry struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id"`
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Raw       json.RawMessage `json:"raw,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
