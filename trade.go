package tradecore

import (
	"time"
)

// Trade records one execution between a buy and a sell order.
// Fully immutable once created.
type Trade struct {
	id          TradeID
	buyOrderID  OrderID
	sellOrderID OrderID
	price       Price
	quantity    Quantity
	executedAt  time.Time
}

// NewTrade creates a trade with a fresh identity. The quantity must be positive.
func NewTrade(buyOrderID, sellOrderID OrderID, price Price, qty Quantity) (*Trade, error) {
	if price.IsZero() {
		return nil, ErrInvalidPrice
	}
	if qty.IsZero() {
		return nil, ErrInvalidQuantity
	}
	return &Trade{
		id:          NewTradeID(),
		buyOrderID:  buyOrderID,
		sellOrderID: sellOrderID,
		price:       price,
		quantity:    qty,
		executedAt:  time.Now().UTC(),
	}, nil
}

func (t *Trade) ID() TradeID {
	return t.id
}

func (t *Trade) BuyOrderID() OrderID {
	return t.buyOrderID
}

func (t *Trade) SellOrderID() OrderID {
	return t.sellOrderID
}

func (t *Trade) Price() Price {
	return t.price
}

func (t *Trade) Quantity() Quantity {
	return t.quantity
}

func (t *Trade) ExecutedAt() time.Time {
	return t.executedAt
}
