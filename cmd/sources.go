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

type sourcesCmd struct {
	date       string
	ledgerFile string
}

func (*sourcesCmd) Name() string { return "sources" }
func (*sourcesCmd) Synopsis() string {
	return "attribute holdings and profit to each funding source"
}
func (*sourcesCmd) Usage() string {
	return `fpool sources [-d <date>] [-l <ledger>]

  Splits every investment across the funding sources of its batch,
  proportionally to their contributions, and values each source's slice.
  The split is exact: allocated units and cost always sum to the
  investment's totals.
`
}

func (c *sourcesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fundpool.Today().String(), "Date for the allocation.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to -ledger-file.")
}

func (c *sourcesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := parseDate(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AllocationsMarkdown(on, ledger.SourceAllocations(on)))
	return subcommands.ExitSuccess
}
