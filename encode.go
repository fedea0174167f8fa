package rebalance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains code to read and write a portfolio snapshot as JSONL,
// human-readable and git-friendly. A snapshot file mixes two kinds of lines:
//
//	{"kind":"position","ticker":"AAPL","price":187.5,"units":4}
//	{"kind":"target","ticker":"META","percent":40,"price":25}
//
// A position line declares held units of an asset at their recorded price
// ("units" defaults to 1). A target line declares one entry of the target
// allocation. Decoding expands position lines into one-unit Positions and
// validates the target entries as a whole.

const (
	kindPosition = "position"
	kindTarget   = "target"
)

// jline is the union of all fields a snapshot line can carry.
// a dedicated local struct with tag annotations, for the json parser.
type jline struct {
	Kind    string          `json:"kind"`
	Ticker  string          `json:"ticker"`
	Price   decimal.Decimal `json:"price"`
	Units   int64           `json:"units"`
	Percent decimal.Decimal `json:"percent"`
}

// DecodePortfolio reads a portfolio snapshot from a stream of JSONL data.
// The currency is a display tag applied to every decoded price; amounts are
// never converted.
//
// Format errors carry the offending line number. Validation failures from
// NewPosition and NewTargetAllocation propagate unchanged, so callers can
// test them with errors.Is.
func DecodePortfolio(r io.Reader, currency string) ([]Position, TargetAllocation, error) {
	var positions []Position
	var entries []TargetEntry

	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var js jline
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, TargetAllocation{}, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}

		switch js.Kind {
		case kindPosition:
			units := js.Units
			if units == 0 {
				units = 1
			}
			if units < 0 {
				return nil, TargetAllocation{}, fmt.Errorf("format error on line %d: %q declares %d units", i, js.Ticker, units)
			}
			pos, err := NewPosition(js.Ticker, M(js.Price, currency))
			if err != nil {
				return nil, TargetAllocation{}, fmt.Errorf("on line %d: %w", i, err)
			}
			for n := int64(0); n < units; n++ {
				positions = append(positions, pos)
			}
		case kindTarget:
			pos, err := NewPosition(js.Ticker, M(js.Price, currency))
			if err != nil {
				return nil, TargetAllocation{}, fmt.Errorf("on line %d: %w", i, err)
			}
			entries = append(entries, TargetEntry{Percent: P(js.Percent), Asset: pos})
		default:
			return nil, TargetAllocation{}, fmt.Errorf("format error on line %d: unknown kind %q", i, js.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, TargetAllocation{}, fmt.Errorf("error reading portfolio: %w", err)
	}

	target, err := NewTargetAllocation(entries)
	if err != nil {
		return nil, TargetAllocation{}, err
	}
	return positions, target, nil
}

// EncodePortfolio writes the snapshot in its canonical JSONL form: position
// lines first in ticker-run order with identical runs collapsed into a
// "units" count, then the target lines in allocation order.
func EncodePortfolio(w io.Writer, positions []Position, target TargetAllocation) error {
	flush := func(p Position, units int64) error {
		var jw jsonObjectWriter
		jw.Append("kind", kindPosition)
		jw.Append("ticker", p.ticker)
		jw.Append("price", p.price.value)
		// a single unit is the default, the field is omitted.
		var collapsed int64
		if units > 1 {
			collapsed = units
		}
		jw.Optional("units", collapsed)
		return writeLine(w, &jw)
	}

	var run Position
	var units int64
	for _, p := range positions {
		if units > 0 && p.ticker == run.ticker && p.price.Equal(run.price) {
			units++
			continue
		}
		if units > 0 {
			if err := flush(run, units); err != nil {
				return err
			}
		}
		run, units = p, 1
	}
	if units > 0 {
		if err := flush(run, units); err != nil {
			return err
		}
	}

	for _, e := range target.Entries() {
		var jw jsonObjectWriter
		jw.Append("kind", kindTarget)
		jw.Append("ticker", e.Asset.ticker)
		jw.Append("percent", e.Percent)
		jw.Append("price", e.Asset.price.value)
		if err := writeLine(w, &jw); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, jw *jsonObjectWriter) error {
	b, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode portfolio line: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("cannot write portfolio line: %w", err)
	}
	return nil
}
