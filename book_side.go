package tradecore

import (
	"github.com/huandu/skiplist"
)

// priceLevel is one price point on a side of the book: a FIFO of orders
// plus a running total of their remaining quantity.
type priceLevel struct {
	price    Price
	totalQty int64
	head     *Order
	tail     *Order
	count    int64
}

// BookSide holds the price-ordered levels of one side of the book.
// Bids sort descending (highest first), asks ascending (lowest first).
// Within a level orders keep strict arrival order.
type BookSide struct {
	side        Side
	totalOrders int64
	depths      int64
	levels      *skiplist.SkipList
	priceIndex  map[string]*skiplist.Element
}

// NewBidSide creates the buy side, sorted by price descending.
func NewBidSide() *BookSide {
	return &BookSide{
		side: Buy,
		levels: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(Price)
			p2, _ := rhs.(Price)

			if p1.LessThan(p2) {
				return 1
			} else if p1.GreaterThan(p2) {
				return -1
			}

			return 0
		})),
		priceIndex: make(map[string]*skiplist.Element),
	}
}

// NewAskSide creates the sell side, sorted by price ascending.
func NewAskSide() *BookSide {
	return &BookSide{
		side: Sell,
		levels: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(Price)
			p2, _ := rhs.(Price)

			if p1.GreaterThan(p2) {
				return 1
			} else if p1.LessThan(p2) {
				return -1
			}

			return 0
		})),
		priceIndex: make(map[string]*skiplist.Element),
	}
}

// Add appends the order at the tail of its price level, creating the
// level if needed.
func (s *BookSide) Add(order *Order) {
	s.insert(order, false)
}

// PutBackAtFront reinserts a partially filled order at the head of its
// level, preserving its time priority after a partial match.
func (s *BookSide) PutBackAtFront(order *Order) {
	s.insert(order, true)
}

func (s *BookSide) insert(order *Order, atFront bool) {
	key := order.Price().String()
	el, ok := s.priceIndex[key]
	if ok {
		unit, _ := el.Value.(*priceLevel)
		if atFront {
			order.next = unit.head
			order.prev = nil
			if unit.head != nil {
				unit.head.prev = order
			}
			unit.head = order
			if unit.tail == nil {
				unit.tail = order
			}
		} else {
			order.prev = unit.tail
			order.next = nil
			if unit.tail != nil {
				unit.tail.next = order
			}
			unit.tail = order
			if unit.head == nil {
				unit.head = order
			}
		}

		unit.totalQty += order.RemainingQty().Value()
		unit.count++
		s.totalOrders++
	} else {
		unit := &priceLevel{
			price:    order.Price(),
			head:     order,
			tail:     order,
			totalQty: order.RemainingQty().Value(),
			count:    1,
		}
		order.next = nil
		order.prev = nil

		el := s.levels.Set(order.Price(), unit)
		s.priceIndex[key] = el

		s.totalOrders++
		s.depths++
	}
}

// purgeEmptyLevels drops exhausted levels from the front of the side.
// Levels are purged lazily on every read so no live level ever references
// an empty queue.
func (s *BookSide) purgeEmptyLevels() {
	for {
		el := s.levels.Front()
		if el == nil {
			return
		}
		unit, _ := el.Value.(*priceLevel)
		if unit.head != nil {
			return
		}
		s.levels.RemoveElement(el)
		delete(s.priceIndex, unit.price.String())
		s.depths--
	}
}

// IsEmpty reports whether the side has no resting orders.
func (s *BookSide) IsEmpty() bool {
	s.purgeEmptyLevels()
	return s.levels.Front() == nil
}

// BestPrice returns the top-of-book price for this side.
func (s *BookSide) BestPrice() (Price, bool) {
	ord := s.PeekBestOrder()
	if ord == nil {
		return Price{}, false
	}
	return ord.Price(), true
}

// PeekBestOrder returns the head order of the best level without removing it.
func (s *BookSide) PeekBestOrder() *Order {
	s.purgeEmptyLevels()
	el := s.levels.Front()
	if el == nil {
		return nil
	}
	unit, _ := el.Value.(*priceLevel)
	return unit.head
}

// PollBestOrder removes and returns the head order of the best level,
// dropping the level once it empties.
func (s *BookSide) PollBestOrder() *Order {
	s.purgeEmptyLevels()
	el := s.levels.Front()
	if el == nil {
		return nil
	}
	unit, _ := el.Value.(*priceLevel)
	order := unit.head

	unit.head = order.next
	if unit.head != nil {
		unit.head.prev = nil
	} else {
		unit.tail = nil
	}
	order.next = nil
	order.prev = nil

	unit.totalQty -= order.RemainingQty().Value()
	unit.count--
	s.totalOrders--

	if unit.count == 0 {
		s.levels.RemoveElement(el)
		delete(s.priceIndex, unit.price.String())
		s.depths--
	}

	return order
}

// OrderCount returns the total number of resting orders on this side.
func (s *BookSide) OrderCount() int64 {
	return s.totalOrders
}

// LevelCount returns the number of live price levels on this side.
func (s *BookSide) LevelCount() int64 {
	s.purgeEmptyLevels()
	return s.depths
}

// forEachLevel walks the levels in side order (best first) and calls fn
// with each level's price and total remaining quantity. Returning false
// stops the walk.
func (s *BookSide) forEachLevel(fn func(price Price, totalQty int64) bool) {
	s.purgeEmptyLevels()
	el := s.levels.Front()
	for el != nil {
		unit, _ := el.Value.(*priceLevel)
		if unit.head != nil && !fn(unit.price, unit.totalQty) {
			return
		}
		el = el.Next()
	}
}
