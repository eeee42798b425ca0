package tradecore

import (
	"fmt"
)

// Read-only commands. Routing reads through the engine keeps them on the
// same single writer as every mutation, so no snapshot ever observes a
// half-applied command.

// GetWalletCommand returns a balance snapshot for one user.
type GetWalletCommand struct {
	UserID UserID
}

func (c GetWalletCommand) Execute(ctx *CommandContext) (*WalletSnapshot, error) {
	wallet, ok := ctx.Wallets.FindByUserID(c.UserID)
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrWalletNotFound, c.UserID)
	}
	return snapshotWallet(wallet), nil
}

// DepthCommand returns the aggregated book depth up to Limit levels per side.
type DepthCommand struct {
	Limit int
}

func (c DepthCommand) Execute(ctx *CommandContext) (*Depth, error) {
	if c.Limit <= 0 {
		return nil, ErrInvalidParam
	}
	return BuildAggregatedBook(ctx.Books.Get()).Depth(c.Limit), nil
}

// UserTradesCommand returns every trade touching one of the user's orders.
// Trades are immutable, so the slice contents are safe to share.
type UserTradesCommand struct {
	UserID UserID
}

func (c UserTradesCommand) Execute(ctx *CommandContext) ([]*Trade, error) {
	return ctx.Trades.FindByUser(c.UserID), nil
}

// AllTradesCommand returns the full trade log in append order.
type AllTradesCommand struct{}

func (AllTradesCommand) Execute(ctx *CommandContext) ([]*Trade, error) {
	return ctx.Trades.FindAll(), nil
}
