// Package cmd implements the CLI application to compute Bitcoin tax lots.
package cmd

import (
	"flag"
	"fmt"
	"os"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand in registration order.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&transferCmd{},
	&txCmd{},
	&lotsCmd{},
	&fmtCmd{},
	&gainsCmd{},
	&carryforwardCmd{},
	&compareCmd{},
	&incomeCmd{},
	&reconcileCmd{},
	&simulateCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")

// DecodeLedgerFile loads the app ledger file.
func DecodeLedgerFile() (*sovereigntax.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sovereigntax.DecodeLedger(f)
}

// appendTransaction appends a single transaction to the app ledger file,
// warning first when it looks like a duplicate of an existing entry.
func appendTransaction(tx sovereigntax.Transaction) subcommands.ExitStatus {
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	if ledger, err := DecodeLedgerFile(); err == nil {
		for _, similar := range ledger.Similar(tx) {
			fmt.Fprintf(os.Stderr, "Warning: looks like an existing %s of %s BTC on %s (%s)\n",
				similar.Type, similar.Quantity.BTCString(), similar.Time.UTC().Format("2006-01-02"), similar.Exchange)
		}
	}

	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := sovereigntax.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw markdown when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseMethodFlag parses the common -method flag.
func parseMethodFlag(s string) (sovereigntax.AccountingMethod, subcommands.ExitStatus) {
	method, err := sovereigntax.ParseAccountingMethod(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing accounting method: %v\n", err)
		return 0, subcommands.ExitUsageError
	}
	return method, subcommands.ExitSuccess
}
