package entities

import "time"

// IntentKind selects between the two processor intent flavors: a payment
// intent (charge now) and a setup intent (store a payment method for later).

type IntentKind string

const (
	IntentKindPayment IntentKind = "payment"
	IntentKindSetup   IntentKind = "setup"
)

// Intent binds an (order, payment-method-config) pair to a processor intent.
//
// Storage model (DynamoDB, one table per kind):
//   - PK: binding_key (config#order)
//
// Invariant: at most one live intent per (order, config). The row is
// inserted once and only replaced while the bound processor intent is
// canceled; a fresh checkout attempt voids the prior pending payment before
// the replacement lands.

type Intent struct {
	OrderID           string     `json:"order_id"`
	ConfigID          string     `json:"payment_method_config_id"`
	Kind              IntentKind `json:"kind"`
	ProcessorIntentID string     `json:"processor_intent_id"`
	CreatedAt         time.Time  `json:"created_at"`
}

// BindingKey is the storage uniqueness key for the (config, order) pair.
func (i Intent) BindingKey() string {
	return i.ConfigID + "#" + i.OrderID
}
