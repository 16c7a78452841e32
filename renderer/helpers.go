// Package renderer turns the engine's result structures into markdown
// reports for terminal display.
package renderer

import (
	"fmt"
	"strings"
	"time"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
)

const dateFormat = "2006-01-02"

func fmtDate(t time.Time) string { return t.UTC().Format(dateFormat) }

func term(isLongTerm bool) string {
	if isLongTerm {
		return "long"
	}
	return "short"
}

// warningsSection renders a bullet list of diagnostics under a header, or
// nothing when there are none.
func warningsSection(b *strings.Builder, title string, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, w := range warnings {
		fmt.Fprintf(b, "- %s\n", w)
	}
	fmt.Fprintln(b)
}

// TransactionsMarkdown renders a transaction listing.
func TransactionsMarkdown(txs []sovereigntax.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Type | Quantity (BTC) | Price | Total | Exchange | Wallet |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|:---|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			fmtDate(tx.Time),
			tx.Type,
			tx.Quantity.BTCString(),
			tx.Price,
			tx.Total,
			tx.Exchange,
			tx.Wallet,
		)
	}
	return b.String()
}
