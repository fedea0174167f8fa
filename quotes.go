package rebalance

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Default jsonpath expressions for the quote snapshot format produced by
// most feed dumps: {"quotes":[{"ticker":"AAPL","last":187.5}, ...]}.
const (
	DefaultTickersPath = "$.quotes[*].ticker"
	DefaultPricesPath  = "$.quotes[*].last"
)

// Quotes maps tickers to their latest quoted price. It is built from a
// saved JSON quote document, never from a live feed.
type Quotes map[string]Money

// DecodeQuotes parses a JSON quote snapshot document and extracts tickers
// and prices with the two jsonpath expressions. The paths must select two
// lists of equal length; empty paths select the default snapshot format.
//
// Vendor feeds are sloppy, so a price is accepted as a JSON number or as a
// string, with a comma tolerated as decimal separator.
func DecodeQuotes(r io.Reader, tickersPath, pricesPath string) (Quotes, error) {
	if tickersPath == "" {
		tickersPath = DefaultTickersPath
	}
	if pricesPath == "" {
		pricesPath = DefaultPricesPath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("error parsing quote snapshot: %w", err)
	}

	tickers, err := getList(jobj, tickersPath)
	if err != nil {
		return nil, fmt.Errorf("error extracting tickers: %w", err)
	}
	prices, err := getList(jobj, pricesPath)
	if err != nil {
		return nil, fmt.Errorf("error extracting prices: %w", err)
	}
	if len(tickers) != len(prices) {
		return nil, fmt.Errorf("quote snapshot mismatch: %d tickers for %d prices", len(tickers), len(prices))
	}

	q := make(Quotes, len(tickers))
	for i, jticker := range tickers {
		ticker, ok := jticker.(string)
		if !ok {
			return nil, fmt.Errorf("quote snapshot: %q selected %v, not a ticker string", tickersPath, jticker)
		}
		val, err := parsePrice(prices[i])
		if err != nil {
			return nil, fmt.Errorf("quote snapshot: cannot read price for %q: %w", ticker, err)
		}
		q[ticker] = Money{value: val}
	}
	return q, nil
}

// getList evaluates a jsonpath expression expected to select a list.
// because jsonpath is never clear about whether it returns a list of
// answers or a single answer, a scalar result is wrapped into a list of one.
func getList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

func parsePrice(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// sometimes, these weird APIs return the value as a string
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		val, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid price string %q: %w", v, err)
		}
		return val, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("value %v is neither a number nor a string", jval)
	}
}

// Reprice returns a copy of the positions with prices refreshed from the
// quotes. Positions whose ticker has no quote keep their recorded price.
// The input slice is never mutated.
func (q Quotes) Reprice(positions []Position) ([]Position, error) {
	repriced := make([]Position, 0, len(positions))
	for _, p := range positions {
		quote, ok := q[p.ticker]
		if !ok {
			repriced = append(repriced, p)
			continue
		}
		np, err := NewPosition(p.ticker, quote.In(p.price.cur))
		if err != nil {
			return nil, err
		}
		repriced = append(repriced, np)
	}
	return repriced, nil
}
