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

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	year   int
	method string
	prior  float64
	limit  float64
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "capital gains report for a tax year" }
func (*gainsCmd) Usage() string {
	return `sovtax gains [-year <year>] [-method <method>] [-prior <usd>] [-limit <usd>]

  Replays the ledger and reports realized gains, short/long term split, and
  the loss deduction arithmetic for one tax year.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", time.Now().UTC().Year(), "Tax year to report on.")
	f.StringVar(&c.method, "method", sovereigntax.FIFO.String(), "Accounting method (fifo, lifo, hifo, specific-id)")
	f.Float64Var(&c.prior, "prior", 0, "Loss carried in from the previous year, as a negative USD amount.")
	f.Float64Var(&c.limit, "limit", 3000, "Annual capital-loss deduction cap in USD.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	summary := sovereigntax.NewTaxYearSummary(result, c.year)
	cf := sovereigntax.ComputeCarryforward(summary.ShortTermGL, summary.LongTermGL, sovereigntax.M(c.prior), sovereigntax.M(c.limit))

	printMarkdown(renderer.GainsMarkdown(summary, cf, method, result.Warnings))

	return subcommands.ExitSuccess
}
