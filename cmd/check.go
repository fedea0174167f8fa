package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	write bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the portfolio file, optionally rewriting it in canonical form" }
func (*checkCmd) Usage() string {
	return `rbl check [-w]

  Validates the portfolio file: every line must parse, prices must be
  non-negative, and the target allocation must sum to exactly 100% of
  strictly positive entries without duplicate tickers. With -w, the file is
  rewritten in its canonical form (identical positions collapsed into a
  "units" count).
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "rewrite the portfolio file in canonical form")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, target, err := DecodePortfolio("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		fmt.Printf("%s is valid: %d positions, %d targets\n", *portfolioFile, len(positions), len(target.Entries()))
		return subcommands.ExitSuccess
	}

	w, err := os.Create(*portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	defer w.Close()

	if err := rebalance.EncodePortfolio(w, positions, target); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully formatted %s\n", *portfolioFile)
	return subcommands.ExitSuccess
}
