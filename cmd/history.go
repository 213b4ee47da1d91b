package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tzuhan/fundpool"
	"github.com/tzuhan/fundpool/renderer"
)

type historyCmd struct {
	from       string
	to         string
	ledgerFile string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the pool's value over time" }
func (*historyCmd) Usage() string {
	return `fpool history [-from <date>] [-to <date>] [-l <ledger>]

  Reconstructs a daily value series from the recorded price facts and
  trades. Without -from/-to the series spans the whole life of the pool.
  Days without new facts carry the previous valuation forward.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the series. Defaults to the first recorded fact.")
	f.StringVar(&c.to, "to", "", "End of the series. Defaults to the last recorded fact.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to -ledger-file.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rng fundpool.Range
	if c.from != "" || c.to != "" {
		var from, to fundpool.Date
		var status subcommands.ExitStatus
		if c.from != "" {
			if from, status = parseDate(c.from); status != subcommands.ExitSuccess {
				return status
			}
		}
		to = fundpool.Today()
		if c.to != "" {
			if to, status = parseDate(c.to); status != subcommands.ExitSuccess {
				return status
			}
		}
		// A zero 'from' is clamped to the first recorded fact.
		rng = fundpool.NewRange(from, to)
	}

	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(ledger.TimeSeries(rng)))
	return subcommands.ExitSuccess
}
