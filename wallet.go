package tradecore

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Wallet holds one user's balances for the two traded assets:
// cash (the quote asset) and the base asset. Wallets are created on first
// funding and never deleted.
type Wallet struct {
	userID UserID
	cash   *Balance
	base   *Balance
}

// NewWallet creates an empty wallet for the user.
func NewWallet(userID UserID) *Wallet {
	return &Wallet{
		userID: userID,
		cash:   NewZeroBalance(),
		base:   NewZeroBalance(),
	}
}

func (w *Wallet) UserID() UserID {
	return w.userID
}

// Cash returns the quote-asset balance.
func (w *Wallet) Cash() *Balance {
	return w.cash
}

// Base returns the base-asset balance.
func (w *Wallet) Base() *Balance {
	return w.base
}

// DepositCash credits cash to available. Zero is a no-op, negative fails.
func (w *Wallet) DepositCash(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.IsZero() {
		return nil
	}
	return w.cash.CreditAvailable(amount)
}

// DepositBase credits base asset to available. Zero is a no-op, negative fails.
func (w *Wallet) DepositBase(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.IsZero() {
		return nil
	}
	return w.base.CreditAvailable(amount)
}

// ReserveForBuy reserves limitPrice * qty of cash ahead of a buy order.
func (w *Wallet) ReserveForBuy(limitPrice Price, qty Quantity) error {
	if qty.IsZero() {
		return ErrInvalidQuantity
	}
	return w.cash.Reserve(limitPrice.Amount(qty))
}

// ReserveForSell reserves qty of the base asset ahead of a sell order.
func (w *Wallet) ReserveForSell(qty Quantity) error {
	if qty.IsZero() {
		return ErrInvalidQuantity
	}
	return w.base.Reserve(qty.Decimal())
}

// ApplyTradeAsBuyer settles one trade on the buy side: the spent amount
// (tradePrice * qty) is consumed from reserved cash, the difference up to
// the limit reservation is released back to available, and the bought
// quantity is credited to the base asset. The trade price must never
// exceed the buyer's limit.
func (w *Wallet) ApplyTradeAsBuyer(limitPrice, tradePrice Price, qty Quantity) error {
	if qty.IsZero() {
		return ErrInvalidQuantity
	}
	if tradePrice.GreaterThan(limitPrice) {
		return ErrPriceExceedsLimit
	}

	spent := tradePrice.Amount(qty)
	reservedAtLimit := limitPrice.Amount(qty)

	if err := w.cash.DebitReserved(spent); err != nil {
		return fmt.Errorf("debit reserved cash: %w", err)
	}

	change := reservedAtLimit.Sub(spent)
	if change.IsPositive() {
		if err := w.cash.Release(change); err != nil {
			return fmt.Errorf("release cash change: %w", err)
		}
	}

	return w.base.CreditAvailable(qty.Decimal())
}

// ApplyTradeAsSeller settles one trade on the sell side: qty is consumed
// from the reserved base asset and the proceeds (tradePrice * qty) are
// credited to available cash.
func (w *Wallet) ApplyTradeAsSeller(tradePrice Price, qty Quantity) error {
	if qty.IsZero() {
		return ErrInvalidQuantity
	}
	if err := w.base.DebitReserved(qty.Decimal()); err != nil {
		return fmt.Errorf("debit reserved base: %w", err)
	}
	return w.cash.CreditAvailable(tradePrice.Amount(qty))
}
