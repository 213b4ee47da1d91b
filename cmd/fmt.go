package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tzuhan/fundpool"
)

type fmtCmd struct {
	ledgerFile string
	stdout     bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the ledger file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `fpool fmt [-l <ledger>] [-stdout]

  Reads the ledger, validates its referential integrity, and rewrites it in
  canonical JSONL form: records grouped by kind, batches and investments in
  chronological order, stable field order.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to format. Defaults to -ledger-file.")
	f.BoolVar(&c.stdout, "stdout", false, "Write the formatted ledger to stdout instead of in-place.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := fundpool.EncodeLedger(&buf, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.stdout {
		os.Stdout.Write(buf.Bytes())
		return subcommands.ExitSuccess
	}

	filename := c.ledgerFile
	if filename == "" {
		filename = *ledgerFile
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s\n", filename)
	return subcommands.ExitSuccess
}
