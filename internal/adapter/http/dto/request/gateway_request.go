package request

// CaptureRequest asks to settle an authorized payment. Amount is in the
// order's local subunits and must match the authorized amount exactly.
type CaptureRequest struct {
	Amount int64 `json:"amount"`
}

// RefundRequest asks for a partial or full refund against a settled payment.
type RefundRequest struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}
