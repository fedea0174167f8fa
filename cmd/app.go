// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&rebalanceCmd{}, "portfolio")
	c.Register(&weightsCmd{}, "portfolio")
	c.Register(&checkCmd{}, "portfolio")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.jsonl", "Path to the portfolio snapshot file (JSONL format)")

// DecodePortfolio reads the app portfolio file, tagging prices with the
// given display currency.
func DecodePortfolio(currency string) ([]rebalance.Position, rebalance.TargetAllocation, error) {
	f, err := os.Open(*portfolioFile)
	if err != nil {
		return nil, rebalance.TargetAllocation{}, fmt.Errorf("cannot open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	return rebalance.DecodePortfolio(f, currency)
}

// DecodeQuotes reads a quote snapshot file with the given jsonpath
// expressions (empty paths select the default snapshot format).
func DecodeQuotes(filename, tickersPath, pricesPath string) (rebalance.Quotes, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open quote snapshot %q: %w", filename, err)
	}
	defer f.Close()
	return rebalance.DecodeQuotes(f, tickersPath, pricesPath)
}
