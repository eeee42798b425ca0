package tradecore

import (
	"fmt"
)

// PlaceOrderCommand is the one business transaction: reserve funds, create
// the order, match it against the book, settle every resulting trade, and
// rest any remainder. Reserving before matching guarantees settlement can
// never fail for insufficient funds.
type PlaceOrderCommand struct {
	UserID   UserID
	Side     Side
	Price    Price
	Quantity Quantity
}

type PlaceOrderResult struct {
	OrderID    OrderID
	TradeCount int
}

func (c PlaceOrderCommand) Execute(ctx *CommandContext) (*PlaceOrderResult, error) {
	if c.Side != Buy && c.Side != Sell {
		return nil, ErrInvalidParam
	}
	if c.Price.IsZero() {
		return nil, ErrInvalidPrice
	}
	if c.Quantity.IsZero() {
		return nil, ErrInvalidQuantity
	}

	wallet, ok := ctx.Wallets.FindByUserID(c.UserID)
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrWalletNotFound, c.UserID)
	}

	// 1) Reserve before entering the book.
	if c.Side == Buy {
		if err := wallet.ReserveForBuy(c.Price, c.Quantity); err != nil {
			return nil, err
		}
	} else {
		if err := wallet.ReserveForSell(c.Quantity); err != nil {
			return nil, err
		}
	}
	ctx.Wallets.Save(wallet)

	// 2) Create the incoming order.
	incoming, err := NewOrder(c.UserID, c.Side, c.Price, c.Quantity)
	if err != nil {
		return nil, err
	}
	ctx.Orders.Save(incoming)

	// 3) Match against the live book.
	book := ctx.Books.Get()
	trades, err := ctx.Matcher.MatchIncoming(incoming, book)
	if err != nil {
		return nil, err
	}

	// 4) Settle each trade.
	for _, trade := range trades {
		if err := settleTrade(ctx, trade); err != nil {
			return nil, err
		}
	}

	// 5) Leftover quantity rests in the book.
	if !incoming.IsFilled() {
		book.Add(incoming)
	}

	ctx.Books.Save(book)
	ctx.Orders.Save(incoming)

	return &PlaceOrderResult{OrderID: incoming.ID(), TradeCount: len(trades)}, nil
}

// settleTrade moves funds between the two wallets of one trade and persists
// every touched entity. A missing order or wallet here means the book and
// the stores disagree; that is an invariant violation, not a normal error.
func settleTrade(ctx *CommandContext, trade *Trade) error {
	buyOrder, ok := ctx.Orders.FindByID(trade.BuyOrderID())
	if !ok {
		return fmt.Errorf("%w: buy order %s referenced by trade %s", ErrOrderNotFound, trade.BuyOrderID(), trade.ID())
	}
	sellOrder, ok := ctx.Orders.FindByID(trade.SellOrderID())
	if !ok {
		return fmt.Errorf("%w: sell order %s referenced by trade %s", ErrOrderNotFound, trade.SellOrderID(), trade.ID())
	}

	buyer, ok := ctx.Wallets.FindByUserID(buyOrder.UserID())
	if !ok {
		return fmt.Errorf("%w: buyer %s", ErrWalletNotFound, buyOrder.UserID())
	}
	seller, ok := ctx.Wallets.FindByUserID(sellOrder.UserID())
	if !ok {
		return fmt.Errorf("%w: seller %s", ErrWalletNotFound, sellOrder.UserID())
	}

	if err := buyer.ApplyTradeAsBuyer(buyOrder.Price(), trade.Price(), trade.Quantity()); err != nil {
		return err
	}
	if err := seller.ApplyTradeAsSeller(trade.Price(), trade.Quantity()); err != nil {
		return err
	}

	ctx.Wallets.Save(buyer)
	ctx.Wallets.Save(seller)
	ctx.Trades.Append(trade)
	ctx.Orders.Save(buyOrder)
	ctx.Orders.Save(sellOrder)

	return nil
}
