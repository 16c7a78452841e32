package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/SovereignTax/sovereign-tax/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	date     string
	quantity float64
	price    float64
	method   string
	wallet   string
	lots     string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "preview a sale without recording it" }
func (*simulateCmd) Usage() string {
	return `sovtax simulate -q <btc> [-p <usd>] [-method <method>] [-w <wallet>] [-d <date>] [-lots <id=btc,...>]

  Matches a hypothetical sale against the current lot state and shows the
  resulting gain, without writing anything to the ledger. When no price is
  given the current CoinGecko spot price is used. With -method specific-id,
  -lots picks the lots to consume by id (ids come from 'sovtax lots').
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Sale date (2006-01-02 or RFC 3339). Defaults to now.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity to sell, in BTC.")
	f.Float64Var(&c.price, "p", 0, "Per-unit price in USD. Defaults to the current spot price.")
	f.StringVar(&c.method, "method", sovereigntax.FIFO.String(), "Accounting method (fifo, lifo, hifo, specific-id)")
	f.StringVar(&c.wallet, "w", "", "Wallet identity to sell from. Empty draws from the whole pool.")
	f.StringVar(&c.lots, "lots", "", "Specific-identification selections, as id=btc pairs separated by commas.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, status := parseMethodFlag(c.method)
	if status != subcommands.ExitSuccess {
		return status
	}

	var at time.Time
	if c.date != "" {
		var status subcommands.ExitStatus
		if at, status = parseDateFlag(c.date); status != subcommands.ExitSuccess {
			return status
		}
	}

	selections, err := parseSelections(c.lots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -lots: %v\n", err)
		return subcommands.ExitUsageError
	}

	price := sovereigntax.M(c.price)
	if price.IsZero() {
		price, err = sovereigntax.FetchSpotPriceUSD(http.DefaultClient)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching spot price (pass -p to set one): %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Using spot price %s\n", price)
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	result := sovereigntax.Calculate(ledger.Transactions(), method)
	sale := sovereigntax.SimulateSale(sovereigntax.Q(c.quantity), price, result.Lots, method, selections, c.wallet, at)
	if sale == nil {
		fmt.Fprintln(os.Stderr, "No lots available to match the sale.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SaleMarkdown(sale))
	if sale.Quantity.LessThan(sovereigntax.Q(c.quantity)) {
		fmt.Fprintf(os.Stderr, "Warning: only %s BTC could be matched against open lots.\n", sale.Quantity.BTCString())
	}

	return subcommands.ExitSuccess
}

// parseSelections parses a -lots flag value of the form "id=btc,id=btc".
func parseSelections(s string) ([]sovereigntax.LotSelection, error) {
	if s == "" {
		return nil, nil
	}
	var selections []sovereigntax.LotSelection
	for _, pair := range strings.Split(s, ",") {
		id, amount, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid selection %q, want id=btc", pair)
		}
		quantity, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in selection %q: %w", pair, err)
		}
		selections = append(selections, sovereigntax.LotSelection{
			LotID:    id,
			Quantity: sovereigntax.Q(quantity),
		})
	}
	return selections, nil
}
