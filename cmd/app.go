// Package cmd implements the fpool CLI application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/tzuhan/fundpool"
)

// Commands lists the subcommands. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&sourcesCmd{},
	&navCmd{},
	&batchesCmd{},
	&categoryCmd{},
	&gainsCmd{},
	&historyCmd{},
	&importCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it is short lived, so global flags are fine.
var ledgerFile = flag.String("ledger-file", "pool.jsonl", "Path to the pool ledger file (JSONL format)")

// decodeLedger reads the snapshot from the given path, defaulting to the
// -ledger-file flag. A missing file reads as an empty pool.
func decodeLedger(path string) (*fundpool.Ledger, error) {
	if path == "" {
		path = *ledgerFile
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger %q does not exist, using an empty pool instead", path)
		return fundpool.NewLedger(nil, nil, nil, nil, nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %q: %w", path, err)
	}
	defer f.Close()
	return fundpool.DecodeLedger(f)
}

// printMarkdown renders a markdown document to the terminal. When rendering
// fails the raw markdown is still usable, print it as-is.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseDate resolves a -d flag value, reporting usage errors uniformly.
func parseDate(s string) (fundpool.Date, subcommands.ExitStatus) {
	on, err := fundpool.ParseDate(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return fundpool.Date{}, subcommands.ExitUsageError
	}
	return on, subcommands.ExitSuccess
}
