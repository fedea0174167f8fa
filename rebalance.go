package rebalance

// Suggestion is the outcome of a rebalance computation: how many whole units
// of each asset to buy and to sell to move the portfolio toward its target.
//
// Counts are strictly positive and the two key sets are always disjoint.
// Keys are owned copies of the input tickers, so a Suggestion can outlive
// the snapshot it was computed from.
type Suggestion struct {
	ToBuy  map[string]int64
	ToSell map[string]int64
}

// IsEmpty reports whether the portfolio is already balanced.
func (s Suggestion) IsEmpty() bool { return len(s.ToBuy) == 0 && len(s.ToSell) == 0 }

// Holdings groups one-unit positions into per-ticker unit counts and sums
// the portfolio's total value, each position valued at its own recorded
// price.
func Holdings(positions []Position) (units map[string]int64, total Money) {
	units = make(map[string]int64, len(positions))
	for _, p := range positions {
		units[p.ticker]++
		total = total.Add(p.price)
	}
	return units, total
}

// Weights returns each held ticker's current share of the total portfolio
// value. An empty portfolio has no weights.
func Weights(positions []Position) map[string]Percent {
	values := make(map[string]Money, len(positions))
	var total Money
	for _, p := range positions {
		values[p.ticker] = values[p.ticker].Add(p.price)
		total = total.Add(p.price)
	}
	weights := make(map[string]Percent, len(values))
	if total.IsZero() {
		return weights
	}
	for ticker, value := range values {
		weights[ticker] = Percent{value: value.value.Mul(hundred).Div(total.value)}
	}
	return weights
}

// Rebalance computes the whole-unit trades that move the held positions
// toward the target allocation, conservatively: for each target asset it
// buys or sells only up to the largest whole-unit quantity that does not
// exceed the asset's target share of the total value. Leftover fractional
// value stays unallocated as implicit cash.
//
// The function is total: any (positions, allocation) pair produces a
// Suggestion, never an error. It reads but never mutates its inputs, so
// concurrent callers need no coordination.
func Rebalance(positions []Position, target TargetAllocation) Suggestion {
	s := Suggestion{
		ToBuy:  make(map[string]int64),
		ToSell: make(map[string]int64),
	}

	held, total := Holdings(positions)

	// Nothing is held, nothing can be funded.
	if total.IsZero() {
		return s
	}

	// Full exit: assets held but no longer targeted are sold entirely.
	// Targeted tickers are handled below; the two name sets are disjoint,
	// so buy and sell keys never collide.
	for ticker, units := range held {
		if !target.Contains(ticker) {
			s.ToSell[ticker] = units
		}
	}

	for _, e := range target.entries {
		price := e.Asset.CurrentPrice()

		// No money can be meaningfully allocated to a zero-priced asset.
		var targetUnits int64
		if price.IsPositive() {
			// Truncation, never nearest or ceiling: overshooting the
			// target share is disallowed.
			targetUnits = e.Percent.Of(total).Units(price).IntPart()
		}

		ticker := e.Asset.Ticker()
		current := held[ticker]
		switch {
		case targetUnits > current:
			s.ToBuy[ticker] = targetUnits - current
		case targetUnits < current:
			s.ToSell[ticker] = current - targetUnits
		}
	}

	return s
}
