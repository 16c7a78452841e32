package renderer

import (
	"fmt"
	"strings"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
)

// ReconciliationMarkdown renders the transfer pairing and balance
// diagnostics of a history.
func ReconciliationMarkdown(r sovereigntax.ReconciliationResult) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transfer Reconciliation\n\n")

	fmt.Fprint(&b, "## Matched Transfers\n\n")
	if len(r.MatchedTransfers) == 0 {
		fmt.Fprint(&b, "No matched transfers.\n\n")
	} else {
		fmt.Fprintln(&b, "| From | To | Quantity (BTC) | Sent | Days in transit |")
		fmt.Fprintln(&b, "|:---|:---|---:|:---|---:|")
		for _, p := range r.MatchedTransfers {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d |\n",
				p.TransferOut.Exchange,
				p.TransferIn.Exchange,
				p.Quantity.BTCString(),
				fmtDate(p.TransferOut.Time),
				p.DaysBetween,
			)
		}
		fmt.Fprintln(&b)
	}

	unmatched := func(title string, legs []sovereigntax.Transaction) {
		if len(legs) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		fmt.Fprintln(&b, "| Exchange | Quantity (BTC) | Date |")
		fmt.Fprintln(&b, "|:---|---:|:---|")
		for _, tx := range legs {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", tx.Exchange, tx.Quantity.BTCString(), fmtDate(tx.Time))
		}
		fmt.Fprintln(&b)
	}
	unmatched("Unmatched Outgoing", r.UnmatchedTransferOuts)
	unmatched("Unmatched Incoming", r.UnmatchedTransferIns)

	fmt.Fprint(&b, "## Exchange Balances\n\n")
	fmt.Fprintln(&b, "| Exchange | In (BTC) | Out (BTC) | Net (BTC) |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, bal := range r.ExchangeBalances {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			bal.Exchange,
			bal.TotalIn.BTCString(),
			bal.TotalOut.BTCString(),
			bal.NetBalance.BTCString(),
		)
	}
	fmt.Fprintln(&b)

	warningsSection(&b, "Suggested Missing History", r.SuggestedMissing)
	return b.String()
}
