package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, active only when the shell's completion hook sets
	// COMP_LINE. Otherwise Complete returns immediately.
	quoteFlags := map[string]complete.Predictor{
		"c":            predict.Set{"USD", "EUR", "GBP"},
		"q":            predict.Files("*.json"),
		"tickers-path": predict.Something,
		"prices-path":  predict.Something,
	}
	cmp := &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"rebalance": {Flags: quoteFlags},
			"weights":   {Flags: map[string]complete.Predictor{"c": predict.Set{"USD", "EUR", "GBP"}}},
			"check":     {Flags: map[string]complete.Predictor{"w": predict.Nothing}},
		},
	}
	cmp.Complete("rbl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
