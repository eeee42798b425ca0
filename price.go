package tradecore

import (
	"github.com/shopspring/decimal"
)

// priceScale is the number of decimal places every price and cash amount
// is normalized to. Half-up rounding, matching cent-denominated cash.
const priceScale = 2

// Price is a positive, scale-2 limit or execution price.
// Construct via NewPrice or ParsePrice; the zero value is not a valid price.
type Price struct {
	value decimal.Decimal
}

// NewPrice normalizes value to two decimal places (half-up) and validates
// that the result is positive.
func NewPrice(value decimal.Decimal) (Price, error) {
	v := value.Round(priceScale)
	if v.LessThanOrEqual(decimal.Zero) {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: v}, nil
}

// ParsePrice parses a decimal string into a Price.
func ParsePrice(raw string) (Price, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return Price{}, ErrInvalidPrice
	}
	return NewPrice(v)
}

// Value returns the normalized decimal value.
func (p Price) Value() decimal.Decimal {
	return p.value
}

// Amount returns price * qty as a decimal, used for cash legs.
func (p Price) Amount(qty Quantity) decimal.Decimal {
	return p.value.Mul(qty.Decimal())
}

// IsZero reports whether p is the (invalid) zero value.
func (p Price) IsZero() bool {
	return p.value.IsZero()
}

func (p Price) Cmp(other Price) int {
	return p.value.Cmp(other.value)
}

func (p Price) Equal(other Price) bool {
	return p.value.Equal(other.value)
}

func (p Price) LessThan(other Price) bool {
	return p.value.LessThan(other.value)
}

func (p Price) GreaterThan(other Price) bool {
	return p.value.GreaterThan(other.value)
}

func (p Price) String() string {
	return p.value.StringFixed(priceScale)
}
