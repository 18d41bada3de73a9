package response

import "storegate/internal/usecase/interfaces"

// IntentResponse is what the checkout client needs to drive the processor's
// browser widget: the intent reference, its current status and the client
// secret that unlocks client-side confirmation.
type IntentResponse struct {
	IntentID     string `json:"intent_id"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

func FromProcessorIntent(in interfaces.ProcessorIntent) IntentResponse {
	return IntentResponse{
		IntentID:     in.ID,
		Kind:         string(in.Kind),
		Status:       in.Status,
		ClientSecret: in.ClientSecret,
		Amount:       in.Amount,
		Currency:     in.Currency,
	}
}
