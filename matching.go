package tradecore

// Matcher crosses orders against the book by price-time priority.
// Both operating modes share the same cross/fill primitive and the same
// injected pricing policy.
type Matcher struct {
	pricing PricingPolicy
}

func NewMatcher(pricing PricingPolicy) *Matcher {
	return &Matcher{pricing: pricing}
}

// MatchIncoming crosses a newly submitted order against the opposite side
// of the book until the order fills or the best resting price no longer
// satisfies its limit. Partially filled resting orders go back to the
// front of their level. The incoming order is never inserted here; the
// caller adds any remainder to the book afterward.
func (m *Matcher) MatchIncoming(incoming *Order, book *OrderBook) ([]*Trade, error) {
	if incoming == nil || book == nil {
		return nil, ErrInvalidParam
	}

	trades := make([]*Trade, 0, 4)

	for !incoming.IsFilled() {
		var opposite *BookSide
		if incoming.Side() == Buy {
			opposite = book.Asks()
			best := opposite.PeekBestOrder()
			if best == nil || best.Price().GreaterThan(incoming.Price()) {
				break
			}
		} else {
			opposite = book.Bids()
			best := opposite.PeekBestOrder()
			if best == nil || best.Price().LessThan(incoming.Price()) {
				break
			}
		}

		resting := opposite.PollBestOrder()

		trade, err := m.cross(incoming, resting)
		if err != nil {
			return trades, err
		}
		trades = append(trades, trade)

		if !resting.IsFilled() {
			opposite.PutBackAtFront(resting)
		}
	}

	return trades, nil
}

// MatchBook sweeps the resting book, crossing the best bid and ask while
// they still overlap. Whichever side keeps a remainder goes back to the
// front of its level. The earlier-created of the two orders counts as
// resting and sets the price.
func (m *Matcher) MatchBook(book *OrderBook) ([]*Trade, error) {
	if book == nil {
		return nil, ErrInvalidParam
	}

	trades := make([]*Trade, 0, 4)

	for {
		bestBid := book.Bids().PeekBestOrder()
		bestAsk := book.Asks().PeekBestOrder()
		if bestBid == nil || bestAsk == nil || bestBid.Price().LessThan(bestAsk.Price()) {
			break
		}

		bid := book.Bids().PollBestOrder()
		ask := book.Asks().PollBestOrder()

		aggressor, resting := bid, ask
		if bid.CreatedAt().Before(ask.CreatedAt()) {
			aggressor, resting = ask, bid
		}

		trade, err := m.cross(aggressor, resting)
		if err != nil {
			return trades, err
		}
		trades = append(trades, trade)

		if !bid.IsFilled() {
			book.Bids().PutBackAtFront(bid)
		}
		if !ask.IsFilled() {
			book.Asks().PutBackAtFront(ask)
		}
	}

	return trades, nil
}

// cross fills both orders by the smaller remaining quantity and emits the
// trade priced off the resting side. Both orders must already be out of
// the book so no quantity is ever counted twice.
func (m *Matcher) cross(aggressor, resting *Order) (*Trade, error) {
	executed := aggressor.RemainingQty().Min(resting.RemainingQty())

	buy, sell := aggressor, resting
	restingSide := RestingSell
	if aggressor.Side() == Sell {
		buy, sell = resting, aggressor
		restingSide = RestingBuy
	}

	price, err := m.pricing.DeterminePrice(buy, sell, restingSide)
	if err != nil {
		return nil, err
	}

	if err := buy.Fill(executed); err != nil {
		return nil, err
	}
	if err := sell.Fill(executed); err != nil {
		return nil, err
	}

	return NewTrade(buy.ID(), sell.ID(), price, executed)
}
