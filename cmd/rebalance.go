package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	currency    string
	quotesFile  string
	tickersPath string
	pricesPath  string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "compute the trades that move the portfolio to its target" }
func (*rebalanceCmd) Usage() string {
	return `rbl rebalance [-c <currency>] [-q <quotes.json>]

  Computes the whole units to buy and sell to move the held positions toward
  the target allocation, never overshooting any target. With -q, prices are
  refreshed from a quote snapshot file first.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Display currency for amounts")
	f.StringVar(&c.quotesFile, "q", "", "Quote snapshot file to refresh prices from before rebalancing")
	f.StringVar(&c.tickersPath, "tickers-path", "", "jsonpath selecting the tickers in the quote snapshot")
	f.StringVar(&c.pricesPath, "prices-path", "", "jsonpath selecting the prices in the quote snapshot")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, target, err := DecodePortfolio(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.quotesFile != "" {
		quotes, err := DecodeQuotes(c.quotesFile, c.tickersPath, c.pricesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading quotes: %v\n", err)
			return subcommands.ExitFailure
		}
		positions, err = quotes.Reprice(positions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error repricing positions: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	suggestion := rebalance.Rebalance(positions, target)
	printMarkdown(renderer.SuggestionMarkdown(suggestion))

	return subcommands.ExitSuccess
}
