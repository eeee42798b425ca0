package tradecore

import (
	"context"
	"fmt"
	"sync"
)

// Command is one unit of work executed exclusively on the engine's writer.
// Execute must not retain references to shared state beyond what the
// context exposes; anything returned to the caller should be a value copy.
type Command[R any] interface {
	Execute(ctx *CommandContext) (R, error)
}

// CommandContext carries the repositories and the shared matcher a command
// runs against. One context is built at startup and owned by the engine;
// there are no ambient singletons.
type CommandContext struct {
	Orders  OrderRepository
	Books   OrderBookRepository
	Wallets WalletRepository
	Trades  TradeRepository
	Matcher *Matcher
}

func NewCommandContext(
	orders OrderRepository,
	books OrderBookRepository,
	wallets WalletRepository,
	trades TradeRepository,
	matcher *Matcher,
) (*CommandContext, error) {
	if orders == nil || books == nil || wallets == nil || trades == nil || matcher == nil {
		return nil, ErrInvalidParam
	}
	return &CommandContext{
		Orders:  orders,
		Books:   books,
		Wallets: wallets,
		Trades:  trades,
		Matcher: matcher,
	}, nil
}

// CommandError wraps a failure that occurred while a command ran.
// It carries the submission's correlation id; errors.Is/As reach the cause.
type CommandError struct {
	CommandID string
	Err       error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.CommandID, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Result is the handle for one submitted command. It is fulfilled exactly
// once, with either a value or an error, and may be awaited concurrently
// by any number of observers.
type Result[R any] struct {
	once  sync.Once
	done  chan struct{}
	value R
	err   error
}

func newResult[R any]() *Result[R] {
	return &Result[R]{done: make(chan struct{})}
}

func (r *Result[R]) complete(value R) {
	r.once.Do(func() {
		r.value = value
		close(r.done)
	})
}

func (r *Result[R]) fail(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Done is closed once the result is fulfilled.
func (r *Result[R]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the result is fulfilled or ctx expires. The engine has
// no per-command timeout; callers impose their own through ctx.
func (r *Result[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
