package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// weightsCmd holds the flags for the 'weights' subcommand.
type weightsCmd struct {
	currency string
}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "display current vs target allocation weights" }
func (*weightsCmd) Usage() string {
	return `rbl weights [-c <currency>]

  Displays each asset's current share of the portfolio value next to its
  target share.
`
}

func (c *weightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Display currency for amounts")
}

func (c *weightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, target, err := DecodePortfolio(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WeightsMarkdown(positions, target))

	return subcommands.ExitSuccess
}
