package tradecore

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Quantity is a non-negative integer count of the base asset.
type Quantity struct {
	value int64
}

// NewQuantity returns a quantity, rejecting negative values.
func NewQuantity(value int64) (Quantity, error) {
	if value < 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

// PositiveQuantity returns a quantity, rejecting zero and negative values.
func PositiveQuantity(value int64) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int64 {
	return q.value
}

func (q Quantity) IsZero() bool {
	return q.value == 0
}

// Sub subtracts other from q, failing if the result would be negative.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if other.value > q.value {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: q.value - other.value}, nil
}

// Min returns the smaller of q and other.
func (q Quantity) Min(other Quantity) Quantity {
	if other.value < q.value {
		return other
	}
	return q
}

// Decimal converts the quantity for settlement math.
func (q Quantity) Decimal() decimal.Decimal {
	return decimal.NewFromInt(q.value)
}

func (q Quantity) String() string {
	return strconv.FormatInt(q.value, 10)
}
