package cmd

import (
	"context"
	"flag"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date     string
	exchange string
	wallet   string
	quantity float64
	price    float64
	total    float64
	fee      float64
	memo     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a BTC sale" }
func (*sellCmd) Usage() string {
	return `sovtax sell -q <btc> -p <usd> -e <exchange> [-d <date>] [-w <wallet>] [-fee <usd>] [-memo <text>]

  Appends a sale to the ledger. The fee is deducted from the proceeds.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (2006-01-02 or RFC 3339). Defaults to now.")
	f.StringVar(&c.exchange, "e", "", "Exchange the sale happened on.")
	f.StringVar(&c.wallet, "w", "", "Wallet label, when different from the exchange.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity sold, in BTC.")
	f.Float64Var(&c.price, "p", 0, "Per-unit price, in USD.")
	f.Float64Var(&c.total, "total", 0, "Total proceeds in USD. Defaults to quantity times price.")
	f.Float64Var(&c.fee, "fee", 0, "Exchange fee in USD, deducted from the proceeds.")
	f.StringVar(&c.memo, "memo", "", "Free-form note.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	at, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	tx := sovereigntax.NewSell(at, c.exchange, sovereigntax.Q(c.quantity), sovereigntax.M(c.price), sovereigntax.M(c.total))
	tx.Wallet = c.wallet
	tx.Memo = c.memo
	if c.fee != 0 {
		tx.Fee = sovereigntax.M(c.fee)
		tx.Total = tx.Total.Sub(tx.Fee)
	}

	return appendTransaction(tx)
}
