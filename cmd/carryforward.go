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

// carryforwardCmd holds the flags for the 'carryforward' subcommand.
type carryforwardCmd struct {
	from   int
	to     int
	method string
	prior  float64
	limit  float64
}

func (*carryforwardCmd) Name() string     { return "carryforward" }
func (*carryforwardCmd) Synopsis() string { return "loss carryforward chain across tax years" }
func (*carryforwardCmd) Usage() string {
	return `sovtax carryforward [-from <year>] [-to <year>] [-method <method>] [-prior <usd>] [-limit <usd>]

  Applies the annual loss deduction cap year over year, threading each
  year's rolling balance into the next. The year range defaults to the
  ledger's first sale year through the current year.
`
}

func (c *carryforwardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.from, "from", 0, "First tax year of the chain. Defaults to the first sale year.")
	f.IntVar(&c.to, "to", time.Now().UTC().Year(), "Last tax year of the chain.")
	f.StringVar(&c.method, "method", sovereigntax.FIFO.String(), "Accounting method (fifo, lifo, hifo, specific-id)")
	f.Float64Var(&c.prior, "prior", 0, "Loss carried in from before the first year, as a negative USD amount.")
	f.Float64Var(&c.limit, "limit", 3000, "Annual capital-loss deduction cap in USD.")
}

func (c *carryforwardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	from := c.from
	if from == 0 {
		for _, sale := range result.Sales {
			if y := sale.SaleDate.UTC().Year(); from == 0 || y < from {
				from = y
			}
		}
	}
	if from == 0 || from > c.to {
		fmt.Fprintln(os.Stderr, "No sales to report on.")
		return subcommands.ExitSuccess
	}

	chain := sovereigntax.CarryforwardChain(result, from, c.to, sovereigntax.M(c.prior), sovereigntax.M(c.limit))
	printMarkdown(renderer.CarryforwardMarkdown(chain))

	return subcommands.ExitSuccess
}
