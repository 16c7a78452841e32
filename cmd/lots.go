package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/SovereignTax/sovereign-tax/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	method string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list open tax lots" }
func (*lotsCmd) Usage() string {
	return `sovtax lots [-method <method>]

  Replays the ledger and lists the lots still holding inventory, with the
  ids a specific-identification sale can reference.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", sovereigntax.FIFO.String(), "Accounting method (fifo, lifo, hifo, specific-id)")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, status := parseMethodFlag(c.method)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	result := sovereigntax.Calculate(ledger.Transactions(), method)
	printMarkdown(renderer.LotsMarkdown(result.Lots))
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	return subcommands.ExitSuccess
}
