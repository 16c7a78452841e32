package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/SovereignTax/sovereign-tax/renderer"
	"github.com/google/subcommands"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	year int
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "income report for a tax year" }
func (*incomeCmd) Usage() string {
	return `sovtax income [-year <year>]

  Reports mining, staking and airdrop acquisitions for one year, valued at
  their acquisition-time USD total.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", time.Now().UTC().Year(), "Tax year to report on.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	summary := sovereigntax.NewIncomeSummary(ledger.Transactions(), c.year)
	printMarkdown(renderer.IncomeMarkdown(summary))

	return subcommands.ExitSuccess
}
