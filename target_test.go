package rebalance

import (
	"errors"
	"strings"
	"testing"
)

// pos is a test helper that panics on invalid prices, which the tests never use.
func pos(ticker string, price float64) Position {
	p, err := NewPosition(ticker, M(price, "USD"))
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewTargetAllocation(t *testing.T) {
	tests := []struct {
		name    string
		entries []TargetEntry
		reason  string // "" means the allocation must be valid
	}{
		{
			name: "classic split",
			entries: []TargetEntry{
				{Percent: P(40), Asset: pos("META", 25)},
				{Percent: P(60), Asset: pos("AAPL", 150)},
			},
		},
		{
			name: "fractional split sums exactly",
			entries: []TargetEntry{
				{Percent: P(33.3), Asset: pos("A", 1)},
				{Percent: P(33.3), Asset: pos("B", 1)},
				{Percent: P(33.4), Asset: pos("C", 1)},
			},
		},
		{
			name: "binary float artifact does not break exactness",
			entries: []TargetEntry{
				{Percent: P(0.1), Asset: pos("A", 1)},
				{Percent: P(0.2), Asset: pos("B", 1)},
				{Percent: P(99.7), Asset: pos("C", 1)},
			},
		},
		{
			name: "sum below 100",
			entries: []TargetEntry{
				{Percent: P(40), Asset: pos("META", 25)},
				{Percent: P(50), Asset: pos("AAPL", 150)},
			},
			reason: "sum to 90.00%",
		},
		{
			name: "sum above 100",
			entries: []TargetEntry{
				{Percent: P(50), Asset: pos("META", 25)},
				{Percent: P(60), Asset: pos("AAPL", 150)},
			},
			reason: "sum to 110.00%",
		},
		{
			name:    "no entries",
			entries: nil,
			reason:  "sum to 0.00%",
		},
		{
			name: "negative entry rejected even when the sum is 100",
			entries: []TargetEntry{
				{Percent: P(-10), Asset: pos("META", 25)},
				{Percent: P(60), Asset: pos("AAPL", 150)},
				{Percent: P(50), Asset: pos("GOOG", 2800)},
			},
			reason: "strictly positive",
		},
		{
			name: "zero entry rejected",
			entries: []TargetEntry{
				{Percent: P(0), Asset: pos("META", 25)},
				{Percent: P(100), Asset: pos("AAPL", 150)},
			},
			reason: "strictly positive",
		},
		{
			name: "duplicate ticker rejected",
			entries: []TargetEntry{
				{Percent: P(50), Asset: pos("META", 25)},
				{Percent: P(50), Asset: pos("META", 26)},
			},
			reason: "targeted twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := NewTargetAllocation(tt.entries)
			if tt.reason == "" {
				if err != nil {
					t.Fatalf("NewTargetAllocation() error = %v, want valid allocation", err)
				}
				if got, want := len(target.Entries()), len(tt.entries); got != want {
					t.Errorf("len(Entries()) = %d, want %d", got, want)
				}
				return
			}
			if err == nil {
				t.Fatalf("NewTargetAllocation() = valid, want error containing %q", tt.reason)
			}
			if !errors.Is(err, ErrInvalidAllocation) {
				t.Errorf("errors.Is(err, ErrInvalidAllocation) = false for %v", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error = %q, want it to contain %q", err, tt.reason)
			}
		})
	}
}

func TestNewSingleTarget(t *testing.T) {
	target := NewSingleTarget(pos("META", 25))

	entries := target.Entries()
	if len(entries) != 1 {
		t.Fatalf("len(Entries()) = %d, want 1", len(entries))
	}
	if !entries[0].Percent.Equal(P(100)) {
		t.Errorf("Percent = %s, want 100.00%%", entries[0].Percent)
	}
	if !target.Contains("META") {
		t.Errorf("Contains(META) = false, want true")
	}
}

func TestTargetAllocation_Contains_IsCaseSensitive(t *testing.T) {
	target := NewSingleTarget(pos("META", 25))

	if target.Contains("meta") {
		t.Errorf("Contains(meta) = true, tickers must not be normalized")
	}
	if target.Contains("CASH") {
		t.Errorf("Contains(CASH) = true, want false")
	}
}

func TestTargetAllocation_EntriesIsACopy(t *testing.T) {
	target, err := NewTargetAllocation([]TargetEntry{
		{Percent: P(40), Asset: pos("META", 25)},
		{Percent: P(60), Asset: pos("AAPL", 150)},
	})
	if err != nil {
		t.Fatal(err)
	}

	entries := target.Entries()
	entries[0] = TargetEntry{Percent: P(100), Asset: pos("EVIL", 1)}

	if target.Contains("EVIL") {
		t.Errorf("mutating the Entries() copy leaked into the allocation")
	}
	if !target.Contains("META") {
		t.Errorf("Contains(META) = false after mutating the Entries() copy")
	}
}

func TestNewTargetAllocation_DoesNotShareTheInputSlice(t *testing.T) {
	entries := []TargetEntry{
		{Percent: P(40), Asset: pos("META", 25)},
		{Percent: P(60), Asset: pos("AAPL", 150)},
	}
	target, err := NewTargetAllocation(entries)
	if err != nil {
		t.Fatal(err)
	}

	entries[0] = TargetEntry{Percent: P(40), Asset: pos("EVIL", 25)}

	if target.Contains("EVIL") {
		t.Errorf("mutating the input slice leaked into the allocation")
	}
}
