package response

import (
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase"
)

type PaymentResponse struct {
	ID                 string    `json:"id"`
	OrderID            string    `json:"order_id"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"`
	State              string    `json:"state"`
	ProcessorReference string    `json:"processor_reference,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		Amount:             p.Amount,
		Currency:           p.Currency,
		State:              string(p.State),
		ProcessorReference: p.ProcessorReference,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// ConfirmationResponse echoes where the order landed after a redirect
// confirmation.
type ConfirmationResponse struct {
	OrderID      string `json:"order_id"`
	PaymentID    string `json:"payment_id"`
	PaymentState string `json:"payment_state"`
}

func FromConfirmation(p entities.Payment) ConfirmationResponse {
	return ConfirmationResponse{
		OrderID:      p.OrderID,
		PaymentID:    p.ID,
		PaymentState: string(p.State),
	}
}

// GatewayResultResponse is the wire shape of a capture/void/refund outcome.
type GatewayResultResponse struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	ProcessorReference string `json:"processor_reference,omitempty"`
}

func FromPaymentResult(r usecase.PaymentResult) GatewayResultResponse {
	return GatewayResultResponse{
		Success:            r.Success,
		Message:            r.Message,
		ProcessorReference: r.ProcessorReference,
	}
}
