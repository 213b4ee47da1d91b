package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tzuhan/fundpool"
)

type importCmd struct {
	outputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "build a ledger from a Google Sheets export" }
func (*importCmd) Usage() string {
	return `fpool import [-o <ledger>] <export.json>

  Reads the JSON response of a Google Sheets values.batchGet call covering
  the pool's worksheets (batches, funding_sources, investments, prices,
  exchange_rates, ticker_tags) and writes a canonical JSONL ledger.
  Reads stdin when no file is given.

Usage Examples:
# Fetch the spreadsheet and build the ledger.
$ curl -s "$SHEETS_URL" | fpool import -o pool.jsonl
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Ledger file to write. Defaults to -ledger-file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if f.NArg() > 0 {
		var err error
		if in, err = os.Open(f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	ledger, err := fundpool.ImportSheets(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing spreadsheet: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating imported data: %v\n", err)
		return subcommands.ExitFailure
	}

	filename := c.outputFile
	if filename == "" {
		filename = *ledgerFile
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := fundpool.EncodeLedger(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported into %s\n", filename)
	return subcommands.ExitSuccess
}
