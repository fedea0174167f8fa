package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/rebalance"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func mustPosition(t *testing.T, ticker string, price float64) rebalance.Position {
	t.Helper()
	p, err := rebalance.NewPosition(ticker, rebalance.M(price, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// parseTables parses markdown with the GFM table extension and returns the
// number of headers and body rows found, walking the AST the same way the
// output consumers do.
func parseTables(t *testing.T, source string) (headers, rows int) {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader([]byte(source)))

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.TableHeader:
			headers++
		case *east.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	return headers, rows
}

func TestSuggestionMarkdown(t *testing.T) {
	s := rebalance.Suggestion{
		ToBuy:  map[string]int64{"META": 4},
		ToSell: map[string]int64{"CASH": 100, "OLD": 2},
	}

	got := SuggestionMarkdown(s)

	headers, rows := parseTables(t, got)
	if headers != 1 {
		t.Errorf("rendered %d table headers, want 1:\n%s", headers, got)
	}
	if rows != 3 {
		t.Errorf("rendered %d trade rows, want 3:\n%s", rows, got)
	}
	// sells come first, they fund the buys.
	if strings.Index(got, "Sell | CASH") > strings.Index(got, "Buy | META") {
		t.Errorf("sells must be rendered before buys:\n%s", got)
	}
}

func TestSuggestionMarkdown_Balanced(t *testing.T) {
	got := SuggestionMarkdown(rebalance.Suggestion{})

	if _, rows := parseTables(t, got); rows != 0 {
		t.Errorf("a balanced portfolio must render no trade table:\n%s", got)
	}
	if !strings.Contains(got, "nothing to trade") {
		t.Errorf("missing balanced notice:\n%s", got)
	}
}

func TestWeightsMarkdown(t *testing.T) {
	positions := []rebalance.Position{
		mustPosition(t, "META", 25),
		mustPosition(t, "META", 25),
		mustPosition(t, "OLD", 50),
	}
	target := rebalance.NewSingleTarget(mustPosition(t, "META", 25))

	got := WeightsMarkdown(positions, target)

	if _, rows := parseTables(t, got); rows != 2 {
		t.Errorf("rendered %d rows, want one per ticker (2):\n%s", rows, got)
	}
	if !strings.Contains(got, "50.00%") {
		t.Errorf("missing the 50.00%% current weight:\n%s", got)
	}
	if !strings.Contains(got, "100.00%") {
		t.Errorf("missing the 100.00%% target weight:\n%s", got)
	}
	// OLD is held but not targeted.
	if !strings.Contains(got, "| OLD | 1 |") {
		t.Errorf("missing the untargeted OLD row:\n%s", got)
	}
	// META is worth $50 against a $100 target, OLD is $50 of pure excess.
	if !strings.Contains(got, "-$50.00") {
		t.Errorf("missing the -$50.00 drift on META:\n%s", got)
	}
	if !strings.Contains(got, "+$50.00") {
		t.Errorf("missing the +$50.00 drift on OLD:\n%s", got)
	}
}
