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

type navCmd struct {
	date       string
	ledgerFile string
}

func (*navCmd) Name() string { return "nav" }
func (*navCmd) Synopsis() string {
	return "attribute the pool to funding sources using unit-based NAV accounting"
}
func (*navCmd) Usage() string {
	return `fpool nav [-d <date>] [-l <ledger>]

  Mutual-fund-style attribution: each contribution buys pool units at the
  net asset value of the day it lands, and a source's value is its unit
  share of the whole pool. Compare with 'fpool sources'.
`
}

func (c *navCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fundpool.Today().String(), "Date for the allocation.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to -ledger-file.")
}

func (c *navCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := parseDate(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.NAVMarkdown(on, ledger.NAVAllocations(on)))
	return subcommands.ExitSuccess
}
