package tradecore

// OrderBook owns the two sides of the market. It carries no other state;
// all mutation happens on the command engine's single writer.
type OrderBook struct {
	bids *BookSide
	asks *BookSide
}

// NewOrderBook creates an empty book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids: NewBidSide(),
		asks: NewAskSide(),
	}
}

// Add routes the order to its side, appending at the tail of its price level.
func (book *OrderBook) Add(order *Order) {
	if order.Side() == Buy {
		book.bids.Add(order)
		return
	}
	book.asks.Add(order)
}

func (book *OrderBook) Bids() *BookSide {
	return book.bids
}

func (book *OrderBook) Asks() *BookSide {
	return book.asks
}

// BestBid returns the highest-priced resting buy order, if any.
func (book *OrderBook) BestBid() *Order {
	return book.bids.PeekBestOrder()
}

// BestAsk returns the lowest-priced resting sell order, if any.
func (book *OrderBook) BestAsk() *Order {
	return book.asks.PeekBestOrder()
}
