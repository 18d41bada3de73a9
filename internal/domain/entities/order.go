package entities

import "time"

// OrderState is the checkout workflow position of an order.
//
// The order workflow itself is owned by the storefront; this service only
// reads orders and advances them forward when processor signals arrive.

type OrderState string

const (
	OrderStateCart     OrderState = "cart"
	OrderStateAddress  OrderState = "address"
	OrderStateDelivery OrderState = "delivery"
	OrderStatePayment  OrderState = "payment"
	OrderStateConfirm  OrderState = "confirm"
	OrderStateComplete OrderState = "complete"
)

var orderStateRank = map[OrderState]int{
	OrderStateCart:     0,
	OrderStateAddress:  1,
	OrderStateDelivery: 2,
	OrderStatePayment:  3,
	OrderStateConfirm:  4,
	OrderStateComplete: 5,
}

// Next returns the state one step ahead, or the same state when the order is
// already complete.
func (s OrderState) Next() OrderState {
	switch s {
	case OrderStateCart:
		return OrderStateAddress
	case OrderStateAddress:
		return OrderStateDelivery
	case OrderStateDelivery:
		return OrderStatePayment
	case OrderStatePayment:
		return OrderStateConfirm
	case OrderStateConfirm:
		return OrderStateComplete
	}
	return s
}

// Before reports whether s comes strictly earlier in the workflow than other.
// Unknown states rank last so a bad value can never be "advanced" over a
// known one.
func (s OrderState) Before(other OrderState) bool {
	a, okA := orderStateRank[s]
	b, okB := orderStateRank[other]
	return okA && okB && a < b
}

// Order is the storefront order as seen by the payment service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Total is kept in the ledger's fractional subunits for Currency (e.g. cents
// for USD); conversion to processor units happens at the money package.

type Order struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"`
	State     OrderState `json:"state"`
	Total     int64      `json:"total"`
	Currency  string     `json:"currency"`
	UserID    string     `json:"user_id,omitempty"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
