package rebalance

import (
	"errors"
	"fmt"
)

// ErrInvalidAllocation is the sentinel wrapped by every allocation
// validation failure.
var ErrInvalidAllocation = errors.New("invalid allocation")

// TargetEntry is one (percentage, asset) pair of a target allocation.
type TargetEntry struct {
	Percent Percent
	Asset   Position
}

// TargetAllocation is a validated distribution of the portfolio's total
// value over a set of assets, e.g. (40% META, 60% AAPL).
//
// The type exists to make unrepresentable states unrepresentable: the only
// way to build a non-trivial allocation is NewTargetAllocation, which
// guarantees the percentages sum to exactly 100, every entry is strictly
// positive, and no ticker appears twice. Instances are immutable.
type TargetAllocation struct {
	entries []TargetEntry
}

// NewSingleTarget builds the degenerate allocation that puts 100% of the
// portfolio on a single asset. It is always valid.
func NewSingleTarget(asset Position) TargetAllocation {
	return TargetAllocation{entries: []TargetEntry{{Percent: P(100), Asset: asset}}}
}

// NewTargetAllocation validates the given entries and returns the
// allocation, preserving the supplied order. It returns an error wrapping
// ErrInvalidAllocation when an entry is not strictly positive, a ticker
// appears more than once, or the percentages do not sum to exactly 100.
//
// The sum check is decimal-exact, not epsilon-tolerant: entries like
// 33.3/33.3/33.4 pass, three times 1/3 rounded to binary floats would not
// even arise.
func NewTargetAllocation(entries []TargetEntry) (TargetAllocation, error) {
	sum := P(0)
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.Percent.IsPositive() {
			return TargetAllocation{}, fmt.Errorf("%w: target for %q is %s, every target must be strictly positive", ErrInvalidAllocation, e.Asset.Ticker(), e.Percent)
		}
		if seen[e.Asset.Ticker()] {
			return TargetAllocation{}, fmt.Errorf("%w: ticker %q is targeted twice", ErrInvalidAllocation, e.Asset.Ticker())
		}
		seen[e.Asset.Ticker()] = true
		sum = sum.Add(e.Percent)
	}
	if !sum.Equal(P(100)) {
		return TargetAllocation{}, fmt.Errorf("%w: targets sum to %s instead of 100%%", ErrInvalidAllocation, sum)
	}
	return TargetAllocation{entries: append([]TargetEntry(nil), entries...)}, nil
}

// Contains reports whether some entry targets the given ticker.
func (t TargetAllocation) Contains(ticker string) bool {
	for _, e := range t.entries {
		if e.Asset.Ticker() == ticker {
			return true
		}
	}
	return false
}

// Entries returns the (percentage, asset) pairs in the order they were
// supplied. The returned slice is a copy, the allocation stays immutable.
func (t TargetAllocation) Entries() []TargetEntry {
	return append([]TargetEntry(nil), t.entries...)
}
