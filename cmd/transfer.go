package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/google/subcommands"
)

// transferCmd holds the flags for the 'transfer' subcommand.
type transferCmd struct {
	date     string
	from     string
	to       string
	quantity float64
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record a BTC movement between exchanges" }
func (*transferCmd) Usage() string {
	return `sovtax transfer -q <btc> [-from <exchange>] [-to <exchange>] [-d <date>]

  Appends transfer legs to the ledger. With both -from and -to, one outgoing
  and one incoming leg are written; with only one side, a single leg is
  written, to be paired later when the other exchange's history is imported.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transfer date (2006-01-02 or RFC 3339). Defaults to now.")
	f.StringVar(&c.from, "from", "", "Source exchange.")
	f.StringVar(&c.to, "to", "", "Destination exchange.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity moved, in BTC.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" && c.to == "" {
		fmt.Fprintln(os.Stderr, "At least one of -from and -to is required.")
		return subcommands.ExitUsageError
	}

	at, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	quantity := sovereigntax.Q(c.quantity)
	if c.from != "" {
		if status := appendTransaction(sovereigntax.NewTransferOut(at, c.from, quantity)); status != subcommands.ExitSuccess {
			return status
		}
	}
	if c.to != "" {
		if status := appendTransaction(sovereigntax.NewTransferIn(at, c.to, quantity)); status != subcommands.ExitSuccess {
			return status
		}
	}
	return subcommands.ExitSuccess
}
