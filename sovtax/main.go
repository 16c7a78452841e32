// Command sovtax computes Bitcoin capital gains from a JSONL transaction
// ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/SovereignTax/sovereign-tax/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: run "COMP_INSTALL=1 sovtax" once to install.
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Args: predict.Something}
	}
	complete.Complete(path.Base(os.Args[0]), &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"ledger-file": predict.Files("*.jsonl")},
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
