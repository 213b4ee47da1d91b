package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/tzuhan/fundpool"
	"github.com/tzuhan/fundpool/agent"
	"github.com/tzuhan/fundpool/renderer"
)

type assistCmd struct {
	ledgerFile string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `fpool assist [-l <ledger>] [<question>...]

  Starts an interactive chat with an analyst grounded on the pool's current
  reports. Requires Gemini credentials in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger to analyze. Defaults to -ledger-file.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	ledger, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	// Seed the analyst with the reports of the day.
	on := fundpool.Today()
	analyst := agent.NewAnalyst(
		renderer.SummaryMarkdown(ledger.Summary(on)),
		renderer.AllocationsMarkdown(on, ledger.SourceAllocations(on)),
		renderer.BatchesMarkdown(on, ledger.BatchSummaries(on)),
	)
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
