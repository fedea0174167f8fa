package rebalance

import (
	"errors"
	"fmt"
)

// ErrInvalidPrice is the sentinel wrapped by every price validation failure.
var ErrInvalidPrice = errors.New("invalid price")

// Position represents exactly one held unit of an asset, at the price it was
// recorded. It is immutable once constructed.
//
// The ticker is the asset's identity: grouping and lookups use it as-is,
// case-sensitive, without normalization.
type Position struct {
	ticker string
	price  Money
}

// NewPosition returns a one-unit position, or an error wrapping
// ErrInvalidPrice when the recorded price is negative. A zero price is
// accepted: it is a valid (if useless) quote, not a construction error.
func NewPosition(ticker string, price Money) (Position, error) {
	if price.IsNegative() {
		return Position{}, fmt.Errorf("%w: %q is priced %s, prices cannot be negative", ErrInvalidPrice, ticker, price)
	}
	return Position{ticker: ticker, price: price}, nil
}

// Ticker returns the asset name this position is a unit of.
func (p Position) Ticker() string { return p.ticker }

// CurrentPrice returns the price the unit was recorded at.
func (p Position) CurrentPrice() Money { return p.price }

func (p Position) String() string {
	return fmt.Sprintf("%s @ %s", p.ticker, p.price)
}
