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

type categoryCmd struct {
	date       string
	dimension  string
	ledgerFile string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "group the pool by tags or by a classification dimension" }
func (*categoryCmd) Usage() string {
	return `fpool category [-d <date>] [-dim <dimension>] [-l <ledger>]

  Without -dim, groups investments by their free-text tags (an investment
  counts in every tag it carries). With -dim, buckets tickers by their tag
  in that classification dimension; each ticker appears exactly once.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fundpool.Today().String(), "Date for the grouping.")
	f.StringVar(&c.dimension, "dim", "", "Classification dimension to group by, for example 'region'.")
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to report on. Defaults to -ledger-file.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := parseDate(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.dimension != "" {
		printMarkdown(renderer.DimensionMarkdown(ledger.DimensionSummary(c.dimension, on)))
	} else {
		printMarkdown(renderer.CategoryMarkdown(ledger.CategorySummary(on)))
	}
	return subcommands.ExitSuccess
}
