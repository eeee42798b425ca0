package tradecore

// RestingSide identifies which side of a cross was already resting in the
// book. The resting order is the maker and sets the execution price.
type RestingSide int8

const (
	RestingBuy  RestingSide = 1
	RestingSell RestingSide = 2
)

// PricingPolicy determines the execution price of a cross between a buy
// and a sell order. Injected into the matcher so alternative rules
// (e.g. midpoint) can be added without touching the matching algorithm.
type PricingPolicy interface {
	DeterminePrice(buy, sell *Order, restingSide RestingSide) (Price, error)
}

// RestingOrderPricing prices every trade at the resting order's limit:
// the aggressor trades at the maker's price, never its own.
type RestingOrderPricing struct{}

func (RestingOrderPricing) DeterminePrice(buy, sell *Order, restingSide RestingSide) (Price, error) {
	if buy == nil || sell == nil {
		return Price{}, ErrInvalidParam
	}
	switch restingSide {
	case RestingBuy:
		return buy.Price(), nil
	case RestingSell:
		return sell.Price(), nil
	default:
		return Price{}, ErrInvalidParam
	}
}
