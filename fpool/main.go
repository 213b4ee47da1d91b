// Command fpool manages a multi-contributor investment pool ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/tzuhan/fundpool/cmd"
)

func main() {
	// Shell completion: when invoked by the completion hooks this call never
	// returns.
	completer().Complete("fpool")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	ledger := map[string]complete.Predictor{
		"l":           predict.Files("*.jsonl"),
		"ledger-file": predict.Files("*.jsonl"),
	}
	dated := map[string]complete.Predictor{
		"d":           predict.Nothing,
		"l":           predict.Files("*.jsonl"),
		"ledger-file": predict.Files("*.jsonl"),
	}
	ranged := map[string]complete.Predictor{
		"from":        predict.Nothing,
		"to":          predict.Nothing,
		"l":           predict.Files("*.jsonl"),
		"ledger-file": predict.Files("*.jsonl"),
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":  {Flags: dated},
			"sources":  {Flags: dated},
			"nav":      {Flags: dated},
			"batches":  {Flags: dated},
			"category": {Flags: map[string]complete.Predictor{"d": predict.Nothing, "dim": predict.Nothing, "l": predict.Files("*.jsonl")}},
			"gains":    {Flags: ranged},
			"history":  {Flags: ranged},
			"import":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}, Args: predict.Files("*.json")},
			"fmt":      {Flags: ledger},
			"topic":    {Args: predict.Set{"concepts", "allocation", "ledger", "readme"}},
			"assist":   {Flags: ledger},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
	}
}
