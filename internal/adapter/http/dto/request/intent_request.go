package request

import "storegate/internal/domain/entities"

// IntentCreateRequest is the payload for the checkout intent route. An empty
// body is valid and means a plain payment intent with no preselected method.
type IntentCreateRequest struct {
	Kind            string `json:"kind"`
	PaymentMethodID string `json:"payment_method_id"`
}

// ResolveKind maps the wire kind onto the domain kind. Empty defaults to
// payment.
func (r IntentCreateRequest) ResolveKind() (entities.IntentKind, bool) {
	switch r.Kind {
	case "", string(entities.IntentKindPayment):
		return entities.IntentKindPayment, true
	case string(entities.IntentKindSetup):
		return entities.IntentKindSetup, true
	}
	return "", false
}
