package tradecore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher() *Matcher {
	return NewMatcher(RestingOrderPricing{})
}

func TestMatchIncoming(t *testing.T) {
	t.Run("no cross when the book is empty", func(t *testing.T) {
		book := NewOrderBook()
		incoming := mustOrder(t, NewUserID(), Buy, "10.00", 5)

		trades, err := newTestMatcher().MatchIncoming(incoming, book)
		require.NoError(t, err)

		assert.Empty(t, trades)
		assert.Equal(t, int64(5), incoming.RemainingQty().Value())
		// the matcher never inserts the incoming order itself
		assert.Nil(t, book.BestBid())
	})

	t.Run("no cross when the best price does not satisfy the limit", func(t *testing.T) {
		book := NewOrderBook()
		book.Add(mustOrder(t, NewUserID(), Sell, "10.01", 5))

		incoming := mustOrder(t, NewUserID(), Buy, "10.00", 5)
		trades, err := newTestMatcher().MatchIncoming(incoming, book)
		require.NoError(t, err)

		assert.Empty(t, trades)
		assert.Equal(t, int64(5), book.BestAsk().RemainingQty().Value())
	})

	t.Run("incoming buy sweeps a cheaper ask at the resting price", func(t *testing.T) {
		book := NewOrderBook()
		book.Add(mustOrder(t, NewUserID(), Sell, "9.00", 4))

		incoming := mustOrder(t, NewUserID(), Buy, "10.00", 10)
		trades, err := newTestMatcher().MatchIncoming(incoming, book)
		require.NoError(t, err)

		require.Len(t, trades, 1)
		assert.Equal(t, "9.00", trades[0].Price().String())
		assert.Equal(t, int64(4), trades[0].Quantity().Value())
		assert.Equal(t, int64(6), incoming.RemainingQty().Value())
		assert.True(t, book.Asks().IsEmpty())
	})

	t.Run("incoming sell crosses against the best bid", func(t *testing.T) {
		book := NewOrderBook()
		resting := mustOrder(t, NewUserID(), Buy, "10.00", 5)
		book.Add(resting)

		incoming := mustOrder(t, NewUserID(), Sell, "9.50", 3)
		trades, err := newTestMatcher().MatchIncoming(incoming, book)
		require.NoError(t, err)

		require.Len(t, trades, 1)
		assert.Equal(t, "10.00", trades[0].Price().String())
		assert.Equal(t, resting.ID(), trades[0].BuyOrderID())
		assert.Equal(t, incoming.ID(), trades[0].SellOrderID())
		assert.True(t, incoming.IsFilled())
		assert.Equal(t, int64(2), book.BestBid().RemainingQty().Value())
	})

	t.Run("fills better levels first, ties in arrival order", func(t *testing.T) {
		book := NewOrderBook()
		first := mustOrder(t, NewUserID(), Sell, "9.00", 2)
		second := mustOrder(t, NewUserID(), Sell, "9.00", 2)
		pricier := mustOrder(t, NewUserID(), Sell, "10.00", 2)
		book.Add(pricier)
		book.Add(first)
		book.Add(second)

		incoming := mustOrder(t, NewUserID(), Buy, "10.00", 6)
		trades, err := newTestMatcher().MatchIncoming(incoming, book)
		require.NoError(t, err)

		require.Len(t, trades, 3)
		assert.Equal(t, first.ID(), trades[0].SellOrderID())
		assert.Equal(t, second.ID(), trades[1].SellOrderID())
		assert.Equal(t, pricier.ID(), trades[2].SellOrderID())
		assert.Equal(t, "9.00", trades[0].Price().String())
		assert.Equal(t, "9.00", trades[1].Price().String())
		assert.Equal(t, "10.00", trades[2].Price().String())
		assert.True(t, incoming.IsFilled())
	})

	t.Run("a partially filled resting order keeps its place in line", func(t *testing.T) {
		book := NewOrderBook()
		resting := mustOrder(t, NewUserID(), Sell, "10.00", 5)
		behind := mustOrder(t, NewUserID(), Sell, "10.00", 5)
		book.Add(resting)
		book.Add(behind)

		matcher := newTestMatcher()

		trades, err := matcher.MatchIncoming(mustOrder(t, NewUserID(), Buy, "10.00", 2), book)
		require.NoError(t, err)
		require.Len(t, trades, 1)
		assert.Equal(t, resting.ID(), trades[0].SellOrderID())
		assert.Equal(t, int64(3), resting.RemainingQty().Value())

		// the remainder is still ahead of the order behind it
		trades, err = matcher.MatchIncoming(mustOrder(t, NewUserID(), Buy, "10.00", 4), book)
		require.NoError(t, err)
		require.Len(t, trades, 2)
		assert.Equal(t, resting.ID(), trades[0].SellOrderID())
		assert.Equal(t, int64(3), trades[0].Quantity().Value())
		assert.Equal(t, behind.ID(), trades[1].SellOrderID())
		assert.Equal(t, int64(1), trades[1].Quantity().Value())
	})

	t.Run("executed quantity never exceeds either side", func(t *testing.T) {
		book := NewOrderBook()
		book.Add(mustOrder(t, NewUserID(), Sell, "9.00", 3))
		book.Add(mustOrder(t, NewUserID(), Sell, "9.50", 3))
		book.Add(mustOrder(t, NewUserID(), Sell, "10.00", 3))

		incoming := mustOrder(t, NewUserID(), Buy, "10.00", 7)
		trades, err := newTestMatcher().MatchIncoming(incoming, book)
		require.NoError(t, err)

		var executed int64
		for _, trade := range trades {
			executed += trade.Quantity().Value()
		}
		assert.Equal(t, int64(7), executed)
		assert.Equal(t, int64(0), incoming.RemainingQty().Value())
		assert.Equal(t, int64(2), book.BestAsk().RemainingQty().Value())
	})
}

func TestMatchBook(t *testing.T) {
	t.Run("sweeps crossed resting orders", func(t *testing.T) {
		book := NewOrderBook()
		bid := mustOrder(t, NewUserID(), Buy, "10.00", 10)
		time.Sleep(time.Millisecond)
		ask := mustOrder(t, NewUserID(), Sell, "9.00", 4)
		book.Add(bid)
		book.Add(ask)

		trades, err := newTestMatcher().MatchBook(book)
		require.NoError(t, err)

		require.Len(t, trades, 1)
		assert.Equal(t, int64(4), trades[0].Quantity().Value())
		// the bid arrived first, so it is the resting order and sets the price
		assert.Equal(t, "10.00", trades[0].Price().String())

		assert.Equal(t, int64(6), book.BestBid().RemainingQty().Value())
		assert.True(t, book.Asks().IsEmpty())
	})

	t.Run("the earlier arrival sets the price", func(t *testing.T) {
		book := NewOrderBook()
		ask := mustOrder(t, NewUserID(), Sell, "9.00", 4)
		time.Sleep(time.Millisecond)
		bid := mustOrder(t, NewUserID(), Buy, "10.00", 4)
		book.Add(bid)
		book.Add(ask)

		trades, err := newTestMatcher().MatchBook(book)
		require.NoError(t, err)

		require.Len(t, trades, 1)
		assert.Equal(t, "9.00", trades[0].Price().String())
		assert.True(t, book.Bids().IsEmpty())
		assert.True(t, book.Asks().IsEmpty())
	})

	t.Run("stops once the spread opens", func(t *testing.T) {
		book := NewOrderBook()
		book.Add(mustOrder(t, NewUserID(), Buy, "10.00", 2))
		book.Add(mustOrder(t, NewUserID(), Buy, "9.00", 2))
		book.Add(mustOrder(t, NewUserID(), Sell, "9.50", 2))
		book.Add(mustOrder(t, NewUserID(), Sell, "11.00", 2))

		trades, err := newTestMatcher().MatchBook(book)
		require.NoError(t, err)

		require.Len(t, trades, 1)
		assert.Equal(t, int64(2), trades[0].Quantity().Value())

		// bid 9.00 and ask 11.00 no longer cross
		assert.Equal(t, "9.00", book.BestBid().Price().String())
		assert.Equal(t, "11.00", book.BestAsk().Price().String())
	})

	t.Run("no trades on an uncrossed book", func(t *testing.T) {
		book := NewOrderBook()
		book.Add(mustOrder(t, NewUserID(), Buy, "9.00", 1))
		book.Add(mustOrder(t, NewUserID(), Sell, "10.00", 1))

		trades, err := newTestMatcher().MatchBook(book)
		require.NoError(t, err)

		assert.Empty(t, trades)
		assert.Equal(t, int64(1), book.Bids().OrderCount())
		assert.Equal(t, int64(1), book.Asks().OrderCount())
	})
}
