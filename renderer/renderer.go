// Package renderer turns rebalancing results into markdown reports.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/rebalance"
)

// SuggestionMarkdown renders the trades of a rebalance suggestion, sells
// first (they fund the buys), each side in ticker order.
func SuggestionMarkdown(s rebalance.Suggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalance\n\n")

	if s.IsEmpty() {
		fmt.Fprintln(&b, "The portfolio is balanced, nothing to trade.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Action | Ticker | Units |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, ticker := range sortedKeys(s.ToSell) {
		fmt.Fprintf(&b, "| Sell | %s | %d |\n", ticker, s.ToSell[ticker])
	}
	for _, ticker := range sortedKeys(s.ToBuy) {
		fmt.Fprintf(&b, "| Buy | %s | %d |\n", ticker, s.ToBuy[ticker])
	}
	return b.String()
}

// WeightsMarkdown renders the current weight and value of each held asset
// next to its target, with the drift (current value minus the target's share
// of the total). Targeted assets come first in allocation order, then the
// held leftovers.
func WeightsMarkdown(positions []rebalance.Position, target rebalance.TargetAllocation) string {
	held, total := rebalance.Holdings(positions)
	weights := rebalance.Weights(positions)

	// value per ticker, each position at its own recorded price.
	values := make(map[string]rebalance.Money, len(held))
	for _, p := range positions {
		values[p.Ticker()] = values[p.Ticker()].Add(p.CurrentPrice())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Allocation\n\n")
	fmt.Fprintf(&b, "Total value: %s\n\n", total)
	fmt.Fprintln(&b, "| Ticker | Held | Value | Current | Target | Drift |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")

	for _, e := range target.Entries() {
		ticker := e.Asset.Ticker()
		drift := values[ticker].Sub(e.Percent.Of(total))
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			ticker, held[ticker], values[ticker], weight(weights, ticker), e.Percent, drift.SignedString())
	}
	for _, ticker := range sortedKeys(held) {
		if target.Contains(ticker) {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %s | - | %s |\n",
			ticker, held[ticker], values[ticker], weight(weights, ticker), values[ticker].SignedString())
	}
	return b.String()
}

// weight formats a ticker's current weight, "-" when nothing is held.
func weight(weights map[string]rebalance.Percent, ticker string) string {
	w, ok := weights[ticker]
	if !ok {
		return "-"
	}
	return w.String()
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
