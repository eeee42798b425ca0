package tradecore

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func mustPrice(t *testing.T, raw string) Price {
	t.Helper()
	price, err := ParsePrice(raw)
	require.NoError(t, err)
	return price
}

func mustQty(t *testing.T, value int64) Quantity {
	t.Helper()
	qty, err := PositiveQuantity(value)
	require.NoError(t, err)
	return qty
}

func mustOrder(t *testing.T, userID UserID, side Side, price string, qty int64) *Order {
	t.Helper()
	order, err := NewOrder(userID, side, mustPrice(t, price), mustQty(t, qty))
	require.NoError(t, err)
	return order
}

func assertDec(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.Truef(t, actual.Equal(dec(expected)), "expected %s, got %s", expected, actual.String())
}

func newTestContext(t *testing.T) *CommandContext {
	t.Helper()
	orders := NewMemoryOrderStore()
	ctx, err := NewCommandContext(
		orders,
		NewMemoryOrderBookStore(),
		NewMemoryWalletStore(),
		NewMemoryTradeStore(orders),
		NewMatcher(RestingOrderPricing{}),
	)
	require.NoError(t, err)
	return ctx
}

func newTestEngine(t *testing.T, capacity int) (*CommandEngine, *CommandContext) {
	t.Helper()
	ctx := newTestContext(t)
	engine, err := NewCommandEngine(ctx, capacity)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = engine.Close()
	})
	return engine, ctx
}
