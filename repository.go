package tradecore

// Repository ports consumed by commands. Implementations are plain stores
// with no transactional guarantees of their own; atomicity comes entirely
// from the command engine's single writer.

type OrderRepository interface {
	FindByID(id OrderID) (*Order, bool)
	Save(order *Order)
}

// OrderBookRepository is a single-slot store for the live book.
type OrderBookRepository interface {
	Get() *OrderBook
	Save(book *OrderBook)
}

type WalletRepository interface {
	FindByUserID(id UserID) (*Wallet, bool)
	Save(wallet *Wallet)
}

type TradeRepository interface {
	Append(trade *Trade)
	FindByUser(id UserID) []*Trade
	FindAll() []*Trade
}
