package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/google/subcommands"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date     string
	exchange string
	wallet   string
	quantity float64
	price    float64
	total    float64
	fee      float64
	income   string
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a BTC purchase" }
func (*buyCmd) Usage() string {
	return `sovtax buy -q <btc> -p <usd> -e <exchange> [-d <date>] [-w <wallet>] [-fee <usd>] [-income <type>] [-memo <text>]

  Appends a buy to the ledger. The fee is folded into the cost basis.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (2006-01-02 or RFC 3339). Defaults to now.")
	f.StringVar(&c.exchange, "e", "", "Exchange the purchase happened on.")
	f.StringVar(&c.wallet, "w", "", "Wallet label, when different from the exchange.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity bought, in BTC.")
	f.Float64Var(&c.price, "p", 0, "Per-unit price, in USD.")
	f.Float64Var(&c.total, "total", 0, "Total cost in USD. Defaults to quantity times price.")
	f.Float64Var(&c.fee, "fee", 0, "Exchange fee in USD, added to the cost basis.")
	f.StringVar(&c.income, "income", "", "Income tag (mining, staking, airdrop) when the buy is income, not a purchase.")
	f.StringVar(&c.memo, "memo", "", "Free-form note.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	at, status := parseDateFlag(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	tx := sovereigntax.NewBuy(at, c.exchange, sovereigntax.Q(c.quantity), sovereigntax.M(c.price), sovereigntax.M(c.total))
	tx.Wallet = c.wallet
	tx.Memo = c.memo
	if c.fee != 0 {
		tx.Fee = sovereigntax.M(c.fee)
		tx.Total = tx.Total.Add(tx.Fee)
	}
	if c.income != "" {
		switch t := sovereigntax.IncomeType(c.income); t {
		case sovereigntax.IncomeMining, sovereigntax.IncomeStaking, sovereigntax.IncomeAirdrop:
			tx.Income = t
		default:
			fmt.Fprintf(os.Stderr, "Unknown income type %q\n", c.income)
			return subcommands.ExitUsageError
		}
	}

	return appendTransaction(tx)
}

// parseDateFlag reads a -d flag, defaulting to the current time.
func parseDateFlag(s string) (time.Time, subcommands.ExitStatus) {
	if s == "" {
		return time.Now().UTC(), subcommands.ExitSuccess
	}
	at, err := sovereigntax.ParseTime(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return time.Time{}, subcommands.ExitUsageError
	}
	return at, subcommands.ExitSuccess
}
