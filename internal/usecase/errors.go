package usecase

import (
	"encoding/json"
	"fmt"
)

// GatewayError is a processor rejection surfaced to the checkout flow as a
// payment failure (card declined, invalid request). It is logged with the
// full processor response and never retried automatically.
type GatewayError struct {
	Code    string
	Message string
	Raw     json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error (%s): %s", e.Code, e.Message)
}

// PaymentResult is the structured outcome of a gateway operation
// (authorize, capture, void, credit). Processor rejections are captured here
// rather than propagated, so the caller can persist the failure without
// crashing the checkout flow.
type PaymentResult struct {
	Success            bool            `json:"success"`
	Message            string          `json:"message"`
	ProcessorReference string          `json:"processor_reference,omitempty"`
	RawResponse        json.RawMessage `json:"raw_response,omitempty"`
}
