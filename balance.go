package tradecore

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balance tracks the available and reserved amounts of a single asset.
// Both amounts are kept at scale 2 and never go negative. Reserved funds
// are earmarked for open orders and are consumed (or released) on settlement.
type Balance struct {
	available decimal.Decimal
	reserved  decimal.Decimal
}

// NewBalance creates a balance with the given split. Negative inputs fail.
func NewBalance(available, reserved decimal.Decimal) (*Balance, error) {
	a := available.Round(priceScale)
	r := reserved.Round(priceScale)
	if a.IsNegative() {
		return nil, fmt.Errorf("available: %w", ErrInvalidAmount)
	}
	if r.IsNegative() {
		return nil, fmt.Errorf("reserved: %w", ErrInvalidAmount)
	}
	return &Balance{available: a, reserved: r}, nil
}

// NewZeroBalance creates an empty balance.
func NewZeroBalance() *Balance {
	return &Balance{available: decimal.Zero, reserved: decimal.Zero}
}

func (b *Balance) Available() decimal.Decimal {
	return b.available
}

func (b *Balance) Reserved() decimal.Decimal {
	return b.reserved
}

// Reserve moves amount from available to reserved.
func (b *Balance) Reserve(amount decimal.Decimal) error {
	a := amount.Round(priceScale)
	if a.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if b.available.LessThan(a) {
		return ErrInsufficientAvailable
	}
	b.available = b.available.Sub(a)
	b.reserved = b.reserved.Add(a)
	return nil
}

// Release moves amount from reserved back to available.
func (b *Balance) Release(amount decimal.Decimal) error {
	a := amount.Round(priceScale)
	if a.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if b.reserved.LessThan(a) {
		return ErrInsufficientReserved
	}
	b.reserved = b.reserved.Sub(a)
	b.available = b.available.Add(a)
	return nil
}

// DebitReserved removes amount from reserved without crediting available.
// Used when reserved funds are spent in settlement.
func (b *Balance) DebitReserved(amount decimal.Decimal) error {
	a := amount.Round(priceScale)
	if a.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if b.reserved.LessThan(a) {
		return ErrInsufficientReserved
	}
	b.reserved = b.reserved.Sub(a)
	return nil
}

// CreditAvailable adds amount to available from outside the balance
// (deposits, trade proceeds).
func (b *Balance) CreditAvailable(amount decimal.Decimal) error {
	a := amount.Round(priceScale)
	if a.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	b.available = b.available.Add(a)
	return nil
}
