package tradecore

import (
	"github.com/igrmk/treemap/v2"
)

// DepthLevel is one price point of the aggregated view: the level price
// and the total remaining quantity resting there.
type DepthLevel struct {
	Price    Price
	Quantity int64
}

// Depth is a top-of-book snapshot, best levels first on both sides.
type Depth struct {
	Bids []DepthLevel
	Asks []DepthLevel
}

// AggregatedBook maintains a simplified view of the order book,
// tracking only price levels and their aggregated quantities (depth).
// It is a value snapshot: safe to hand to callers outside the writer.
type AggregatedBook struct {
	bid *treemap.TreeMap[Price, int64]
	ask *treemap.TreeMap[Price, int64]
}

// NewAggregatedBook creates an empty aggregated book.
// Bid levels iterate best (highest) first, ask levels best (lowest) first.
func NewAggregatedBook() *AggregatedBook {
	return &AggregatedBook{
		bid: treemap.NewWithKeyCompare[Price, int64](func(a, b Price) bool {
			return a.GreaterThan(b)
		}),
		ask: treemap.NewWithKeyCompare[Price, int64](func(a, b Price) bool {
			return a.LessThan(b)
		}),
	}
}

// BuildAggregatedBook captures the live book's per-level totals.
// Must run on the writer that owns the book.
func BuildAggregatedBook(book *OrderBook) *AggregatedBook {
	ab := NewAggregatedBook()
	book.Bids().forEachLevel(func(price Price, totalQty int64) bool {
		ab.bid.Set(price, totalQty)
		return true
	})
	book.Asks().forEachLevel(func(price Price, totalQty int64) bool {
		ab.ask.Set(price, totalQty)
		return true
	})
	return ab
}

// LevelQty returns the aggregated quantity at a specific price level for
// the given side. Returns zero if the price level does not exist.
func (ab *AggregatedBook) LevelQty(side Side, price Price) int64 {
	tree := ab.ask
	if side == Buy {
		tree = ab.bid
	}
	qty, ok := tree.Get(price)
	if !ok {
		return 0
	}
	return qty
}

// Depth returns up to limit levels per side, best levels first.
func (ab *AggregatedBook) Depth(limit int) *Depth {
	depth := &Depth{
		Bids: make([]DepthLevel, 0, limit),
		Asks: make([]DepthLevel, 0, limit),
	}

	for it := ab.bid.Iterator(); it.Valid() && len(depth.Bids) < limit; it.Next() {
		depth.Bids = append(depth.Bids, DepthLevel{Price: it.Key(), Quantity: it.Value()})
	}
	for it := ab.ask.Iterator(); it.Valid() && len(depth.Asks) < limit; it.Next() {
		depth.Asks = append(depth.Asks, DepthLevel{Price: it.Key(), Quantity: it.Value()})
	}

	return depth
}
