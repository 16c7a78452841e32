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

// reconcileCmd holds the flags for the 'reconcile' subcommand.
type reconcileCmd struct{}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "pair transfer legs and flag balance anomalies" }
func (*reconcileCmd) Usage() string {
	return `sovtax reconcile

  Pairs outgoing and incoming transfer legs across exchanges, lists the
  legs left unmatched, and suggests where history may be missing.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	result := sovereigntax.ReconcileTransfers(ledger.Transactions())
	printMarkdown(renderer.ReconciliationMarkdown(result))

	return subcommands.ExitSuccess
}
