package tradecore

import "sync"

// In-memory store implementations of the repository ports.

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[OrderID]*Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		orders: make(map[OrderID]*Order),
	}
}

func (s *MemoryOrderStore) FindByID(id OrderID) (*Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

func (s *MemoryOrderStore) Save(order *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID()] = order
}

type MemoryWalletStore struct {
	mu      sync.RWMutex
	wallets map[UserID]*Wallet
}

func NewMemoryWalletStore() *MemoryWalletStore {
	return &MemoryWalletStore{
		wallets: make(map[UserID]*Wallet),
	}
}

func (s *MemoryWalletStore) FindByUserID(id UserID) (*Wallet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wallet, ok := s.wallets[id]
	return wallet, ok
}

func (s *MemoryWalletStore) Save(wallet *Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallets[wallet.UserID()] = wallet
}

// MemoryOrderBookStore holds the single live book.
type MemoryOrderBookStore struct {
	mu   sync.RWMutex
	book *OrderBook
}

func NewMemoryOrderBookStore() *MemoryOrderBookStore {
	return &MemoryOrderBookStore{
		book: NewOrderBook(),
	}
}

func (s *MemoryOrderBookStore) Get() *OrderBook {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.book
}

func (s *MemoryOrderBookStore) Save(book *OrderBook) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.book = book
}

// MemoryTradeStore is an append-only trade log. Trades reference orders by
// id only, so user lookups resolve ownership through the order store.
type MemoryTradeStore struct {
	mu     sync.RWMutex
	trades []*Trade
	orders OrderRepository
}

func NewMemoryTradeStore(orders OrderRepository) *MemoryTradeStore {
	return &MemoryTradeStore{
		trades: make([]*Trade, 0),
		orders: orders,
	}
}

func (s *MemoryTradeStore) Append(trade *Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, trade)
}

func (s *MemoryTradeStore) FindByUser(id UserID) []*Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Trade, 0)
	for _, trade := range s.trades {
		if s.ownedBy(trade.BuyOrderID(), id) || s.ownedBy(trade.SellOrderID(), id) {
			result = append(result, trade)
		}
	}
	return result
}

func (s *MemoryTradeStore) FindAll() []*Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Trade, len(s.trades))
	copy(result, s.trades)
	return result
}

func (s *MemoryTradeStore) ownedBy(orderID OrderID, userID UserID) bool {
	order, ok := s.orders.FindByID(orderID)
	return ok && order.UserID() == userID
}
