package tradecore

import (
	"time"
)

type Side int8

const (
	Buy  Side = 1
	Sell Side = 2
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Order is a simple limit order. Identity and terms are immutable; only the
// remaining quantity changes as the order fills. Orders stay in their store
// after filling completely so settlement lookups remain addressable.
type Order struct {
	id          OrderID
	userID      UserID
	side        Side
	price       Price
	originalQty Quantity
	createdAt   time.Time

	remainingQty Quantity

	// Intrusive linked list pointers for the FIFO at a price level.
	next *Order
	prev *Order
}

// NewOrder creates an order with a fresh identity and the full quantity
// remaining. The quantity must be positive.
func NewOrder(userID UserID, side Side, price Price, qty Quantity) (*Order, error) {
	if side != Buy && side != Sell {
		return nil, ErrInvalidParam
	}
	if price.IsZero() {
		return nil, ErrInvalidPrice
	}
	if qty.IsZero() {
		return nil, ErrInvalidQuantity
	}
	return &Order{
		id:           NewOrderID(),
		userID:       userID,
		side:         side,
		price:        price,
		originalQty:  qty,
		remainingQty: qty,
		createdAt:    time.Now().UTC(),
	}, nil
}

func (o *Order) ID() OrderID {
	return o.id
}

func (o *Order) UserID() UserID {
	return o.userID
}

func (o *Order) Side() Side {
	return o.side
}

func (o *Order) Price() Price {
	return o.price
}

func (o *Order) OriginalQty() Quantity {
	return o.originalQty
}

func (o *Order) RemainingQty() Quantity {
	return o.remainingQty
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) IsFilled() bool {
	return o.remainingQty.IsZero()
}

// Fill reduces the remaining quantity by executedQty.
// The executed quantity must be positive and must not exceed the remainder.
func (o *Order) Fill(executedQty Quantity) error {
	if executedQty.IsZero() {
		return ErrInvalidQuantity
	}
	remaining, err := o.remainingQty.Sub(executedQty)
	if err != nil {
		return ErrInvalidQuantity
	}
	o.remainingQty = remaining
	return nil
}
