package tradecore

import (
	"github.com/shopspring/decimal"
)

// WalletSnapshot is a value copy of a wallet's balances, safe to hand to
// callers outside the single writer.
type WalletSnapshot struct {
	UserID        UserID
	CashAvailable decimal.Decimal
	CashReserved  decimal.Decimal
	BaseAvailable decimal.Decimal
	BaseReserved  decimal.Decimal
}

func snapshotWallet(w *Wallet) *WalletSnapshot {
	return &WalletSnapshot{
		UserID:        w.UserID(),
		CashAvailable: w.Cash().Available(),
		CashReserved:  w.Cash().Reserved(),
		BaseAvailable: w.Base().Available(),
		BaseReserved:  w.Base().Reserved(),
	}
}

// FundWalletCommand credits deposits to a user's wallet, creating the
// wallet with zero balances on first funding. Amounts must not be
// negative; a zero amount leaves that asset untouched.
type FundWalletCommand struct {
	UserID UserID
	Cash   decimal.Decimal
	Base   decimal.Decimal
}

func (c FundWalletCommand) Execute(ctx *CommandContext) (*WalletSnapshot, error) {
	wallet, ok := ctx.Wallets.FindByUserID(c.UserID)
	if !ok {
		wallet = NewWallet(c.UserID)
	}

	if err := wallet.DepositCash(c.Cash); err != nil {
		return nil, err
	}
	if err := wallet.DepositBase(c.Base); err != nil {
		return nil, err
	}

	ctx.Wallets.Save(wallet)

	return snapshotWallet(wallet), nil
}
