package rebalance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_Units(t *testing.T) {
	if got := M(50, "USD").Units(M(30, "USD")); !got.Equal(Q(1)) {
		t.Errorf("$50 buys %s units at $30, want 1", got)
	}
	if got := M(60, "USD").Units(M(30, "USD")); !got.Equal(Q(2)) {
		t.Errorf("$60 buys %s units at $30, want 2", got)
	}
	if got := M(10, "USD").Units(M(30, "USD")); !got.Equal(Q(0)) {
		t.Errorf("$10 buys %s units at $30, want 0", got)
	}
}

func TestMoney_UnitsFloorsExactly(t *testing.T) {
	// 39999999999999999/20000000000000000 = 1.99999999999999995: a division
	// rounded at 16 decimal places reports 2, the exact quotient floors to 1.
	amount := M(decimal.RequireFromString("39999999999999999"), "USD")
	price := M(decimal.RequireFromString("20000000000000000"), "USD")

	if got := amount.Units(price); !got.Equal(Q(1)) {
		t.Errorf("Units() = %s, want 1 (2 units would cost more than the amount)", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got, want := M(50, "USD").SignedString(), "+$50.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := M(-50, "USD").SignedString(), "-$50.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := M(0, "USD").SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}
