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

type batchesCmd struct {
	date       string
	ledgerFile string
}

func (*batchesCmd) Name() string     { return "batches" }
func (*batchesCmd) Synopsis() string { return "display each capital batch with its funding breakdown" }
func (*batchesCmd) Usage() string {
	return `fpool batches [-d <date>] [-l <ledger>]

  Displays every batch in chronological order: who funded it, what it
  bought, and what it is worth at the given date.
`
}

func (c *batchesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fundpool.Today().String(), "Date for the valuation.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to -ledger-file.")
}

func (c *batchesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := parseDate(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BatchesMarkdown(on, ledger.BatchSummaries(on)))
	return subcommands.ExitSuccess
}
