package tradecore

import "errors"

var (
	ErrInvalidParam          = errors.New("the param is invalid")
	ErrInvalidPrice          = errors.New("price must be a positive decimal")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInsufficientAvailable = errors.New("insufficient available balance")
	ErrInsufficientReserved  = errors.New("insufficient reserved balance")
	ErrPriceExceedsLimit     = errors.New("trade price cannot exceed the buyer limit price")
	ErrWalletNotFound        = errors.New("wallet not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrBackpressure          = errors.New("engine capacity exceeded")
	ErrShutdown              = errors.New("engine is shutting down")
)
