package tradecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatedBook(t *testing.T) {
	book := NewOrderBook()
	book.Add(mustOrder(t, NewUserID(), Buy, "10.00", 3))
	book.Add(mustOrder(t, NewUserID(), Buy, "10.00", 2))
	book.Add(mustOrder(t, NewUserID(), Buy, "9.00", 4))
	book.Add(mustOrder(t, NewUserID(), Sell, "11.00", 1))
	book.Add(mustOrder(t, NewUserID(), Sell, "12.00", 6))
	book.Add(mustOrder(t, NewUserID(), Sell, "13.00", 2))

	ab := BuildAggregatedBook(book)

	t.Run("aggregates quantity per level", func(t *testing.T) {
		assert.Equal(t, int64(5), ab.LevelQty(Buy, mustPrice(t, "10.00")))
		assert.Equal(t, int64(4), ab.LevelQty(Buy, mustPrice(t, "9.00")))
		assert.Equal(t, int64(1), ab.LevelQty(Sell, mustPrice(t, "11.00")))
		assert.Equal(t, int64(0), ab.LevelQty(Sell, mustPrice(t, "99.00")))
	})

	t.Run("depth lists best levels first", func(t *testing.T) {
		depth := ab.Depth(10)

		require.Len(t, depth.Bids, 2)
		assert.Equal(t, "10.00", depth.Bids[0].Price.String())
		assert.Equal(t, int64(5), depth.Bids[0].Quantity)
		assert.Equal(t, "9.00", depth.Bids[1].Price.String())

		require.Len(t, depth.Asks, 3)
		assert.Equal(t, "11.00", depth.Asks[0].Price.String())
		assert.Equal(t, "13.00", depth.Asks[2].Price.String())
	})

	t.Run("depth truncates at the limit", func(t *testing.T) {
		depth := ab.Depth(1)

		require.Len(t, depth.Bids, 1)
		require.Len(t, depth.Asks, 1)
		assert.Equal(t, "10.00", depth.Bids[0].Price.String())
		assert.Equal(t, "11.00", depth.Asks[0].Price.String())
	})
}
