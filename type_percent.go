package rebalance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is an exact percentage of the portfolio's total value.
//
// It is decimal-backed on purpose: the allocation invariant "percentages sum
// to exactly 100" is checked with exact equality, and binary floating-point
// sums like 0.1+0.2 would fail it spuriously.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsPositive() bool     { return p.value.IsPositive() }
func (p Percent) Add(q Percent) Percent {
	return Percent{value: p.value.Add(q.value)}
}

// Of returns the given share of an amount: m * p/100. Dividing by 100 is a
// decimal shift, so the result is exact, never rounded.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Shift(-2), cur: m.cur}
}

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

// MarshalJSON implements the json.Marshaler interface.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
