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

type gainsCmd struct {
	from       string
	to         string
	ledgerFile string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "display per-ticker profit over a date interval" }
func (*gainsCmd) Usage() string {
	return `fpool gains [-from <date>] [-to <date>] [-l <ledger>]

  Computes start-value vs end-value for every ticker held in the interval.
  A position opened inside the interval enters the start value at its cost.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "-1y", "Start of the interval.")
	f.StringVar(&c.to, "to", "0d", "End of the interval.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to -ledger-file.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, status := parseDate(c.from)
	if status != subcommands.ExitSuccess {
		return status
	}
	to, status := parseDate(c.to)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GainsMarkdown(ledger.Gains(fundpool.NewRange(from, to))))
	return subcommands.ExitSuccess
}
