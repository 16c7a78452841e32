package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/SovereignTax/sovereign-tax/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	methods string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare accounting methods side by side" }
func (*compareCmd) Usage() string {
	return `sovtax compare [-methods <m1,m2,...>]

  Runs a full calculation once per accounting method and tabulates the
  realized outcomes side by side. Defaults to fifo, lifo and hifo.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.methods, "methods", "", "Comma-separated accounting methods to compare.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var methods []sovereigntax.AccountingMethod
	if c.methods != "" {
		for _, name := range strings.Split(c.methods, ",") {
			method, err := sovereigntax.ParseAccountingMethod(strings.TrimSpace(name))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing accounting method: %v\n", err)
				return subcommands.ExitUsageError
			}
			methods = append(methods, method)
		}
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	rows := sovereigntax.CompareMethods(ledger.Transactions(), methods...)
	printMarkdown(renderer.ComparisonMarkdown(rows))

	return subcommands.ExitSuccess
}
