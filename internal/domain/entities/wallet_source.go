package entities

import "time"

// WalletSource is a payment method saved to a user's wallet after the
// processor intent indicated future usage.
//
// Storage model (DynamoDB):
//   - PK: wallet_key (user#config#payment_method)
//
// The composite PK makes enrollment idempotent under webhook redelivery.

type WalletSource struct {
	UserID                   string    `json:"user_id"`
	ConfigID                 string    `json:"payment_method_config_id"`
	ProcessorPaymentMethodID string    `json:"processor_payment_method_id"`
	ProcessorCustomerID      string    `json:"processor_customer_id"`
	CreatedAt                time.Time `json:"created_at"`
}

func (w WalletSource) WalletKey() string {
	return w.UserID + "#" + w.ConfigID + "#" + w.ProcessorPaymentMethodID
}
