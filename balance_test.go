package tradecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	t.Run("construction rejects negative amounts", func(t *testing.T) {
		_, err := NewBalance(dec("-0.01"), dec("0"))
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = NewBalance(dec("0"), dec("-1"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("reserve then release restores the original split", func(t *testing.T) {
		b, err := NewBalance(dec("100.00"), dec("5.00"))
		require.NoError(t, err)

		require.NoError(t, b.Reserve(dec("37.50")))
		assertDec(t, "62.50", b.Available())
		assertDec(t, "42.50", b.Reserved())

		require.NoError(t, b.Release(dec("37.50")))
		assertDec(t, "100.00", b.Available())
		assertDec(t, "5.00", b.Reserved())
	})

	t.Run("reserve fails on non-positive or insufficient amount", func(t *testing.T) {
		b, err := NewBalance(dec("10.00"), dec("0"))
		require.NoError(t, err)

		assert.ErrorIs(t, b.Reserve(dec("0")), ErrInvalidAmount)
		assert.ErrorIs(t, b.Reserve(dec("-1")), ErrInvalidAmount)
		assert.ErrorIs(t, b.Reserve(dec("10.01")), ErrInsufficientAvailable)

		assertDec(t, "10.00", b.Available())
		assertDec(t, "0.00", b.Reserved())
	})

	t.Run("release fails beyond reserved", func(t *testing.T) {
		b, err := NewBalance(dec("0"), dec("3.00"))
		require.NoError(t, err)

		assert.ErrorIs(t, b.Release(dec("3.01")), ErrInsufficientReserved)
		assert.ErrorIs(t, b.Release(dec("0")), ErrInvalidAmount)
	})

	t.Run("debit reserved consumes without crediting available", func(t *testing.T) {
		b, err := NewBalance(dec("1.00"), dec("8.00"))
		require.NoError(t, err)

		require.NoError(t, b.DebitReserved(dec("5.00")))
		assertDec(t, "1.00", b.Available())
		assertDec(t, "3.00", b.Reserved())

		assert.ErrorIs(t, b.DebitReserved(dec("3.01")), ErrInsufficientReserved)
	})

	t.Run("credit available adds from outside", func(t *testing.T) {
		b := NewZeroBalance()

		require.NoError(t, b.CreditAvailable(dec("12.34")))
		assertDec(t, "12.34", b.Available())

		assert.ErrorIs(t, b.CreditAvailable(dec("0")), ErrInvalidAmount)
		assert.ErrorIs(t, b.CreditAvailable(dec("-1")), ErrInvalidAmount)
	})

	t.Run("amounts are normalized to scale 2", func(t *testing.T) {
		b := NewZeroBalance()

		require.NoError(t, b.CreditAvailable(dec("1.005")))
		assertDec(t, "1.01", b.Available())
	})
}
