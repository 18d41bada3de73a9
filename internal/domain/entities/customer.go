package entities

import (
	"fmt"
	"time"
)

// CustomerSourceType distinguishes which local identity a processor customer
// belongs to: a registered user, or a guest order.

type CustomerSourceType string

const (
	CustomerSourceUser  CustomerSourceType = "user"
	CustomerSourceOrder CustomerSourceType = "order"
)

// CustomerSource identifies the local owner of a processor customer record.
type CustomerSource struct {
	Type  CustomerSourceType `json:"type"`
	ID    string             `json:"id"`
	Email string             `json:"email"`
}

// Key is the composite identity used for storage-level uniqueness and for
// the idempotency key sent to the processor.
func (s CustomerSource) Key(configID string) string {
	return fmt.Sprintf("%s#%s#%s", configID, s.Type, s.ID)
}

// Customer joins a local identity to a processor-side customer record.
//
// Storage model (DynamoDB):
//   - PK: source_key (config#source_type#source_id)
//
// Invariant: ProcessorCustomerID is written exactly once. Concurrent
// find-or-create must never mint two processor customers for one source; the
// conditional PutItem on source_key is the coordination point, and a losing
// writer re-reads instead of inserting.

type Customer struct {
	ConfigID            string             `json:"payment_method_config_id"`
	SourceType          CustomerSourceType `json:"source_type"`
	SourceID            string             `json:"source_id"`
	ProcessorCustomerID string             `json:"processor_customer_id"`
	CreatedAt           time.Time          `json:"created_at"`
}
