package renderer

import (
	"fmt"
	"strings"

	sovereigntax "github.com/SovereignTax/sovereign-tax"
)

// GainsMarkdown renders one tax year's realized gains with its
// loss-deduction arithmetic.
func GainsMarkdown(summary sovereigntax.TaxYearSummary, cf sovereigntax.CarryforwardResult, method sovereigntax.AccountingMethod, warnings []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Report for %d\n\n", summary.Year)
	fmt.Fprintf(&b, "Method: %s\n\n", method)

	fmt.Fprint(&b, "## Realized Gains\n\n")
	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Sales | %d |\n", summary.Sales)
	fmt.Fprintf(&b, "| Proceeds | %s |\n", summary.Proceeds)
	fmt.Fprintf(&b, "| Cost basis | %s |\n", summary.CostBasis)
	fmt.Fprintf(&b, "| Short-term gain/loss | %s |\n", summary.ShortTermGL.SignedString())
	fmt.Fprintf(&b, "| Long-term gain/loss | %s |\n", summary.LongTermGL.SignedString())
	fmt.Fprintf(&b, "| **Net gain/loss** | **%s** |\n\n", cf.NetGainLoss.SignedString())

	if cf.NetGainLoss.IsNegative() {
		fmt.Fprint(&b, "## Loss Deduction\n\n")
		fmt.Fprintln(&b, "| | Amount |")
		fmt.Fprintln(&b, "|:---|---:|")
		fmt.Fprintf(&b, "| Deductible this year | %s |\n", cf.DeductibleLoss)
		fmt.Fprintf(&b, "| Carryforward to next year | %s |\n\n", cf.Carryforward)
	}

	warningsSection(&b, "Warnings", warnings)
	return b.String()
}

// LotsMarkdown renders the open lots of a book, the view a Specific
// Identification caller picks from.
func LotsMarkdown(book *sovereigntax.LotBook) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Open Lots\n\n")
	fmt.Fprintln(&b, "| ID | Purchased | Remaining (BTC) | Original (BTC) | Cost/BTC | Exchange | Wallet |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|:---|")
	for _, l := range book.Lots() {
		if !l.Open() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			l.ID,
			fmtDate(l.PurchaseDate),
			l.Remaining.BTCString(),
			l.Quantity.BTCString(),
			l.Price,
			l.Exchange,
			l.Wallet,
		)
	}
	fmt.Fprintf(&b, "\nTotal remaining: %s BTC\n", book.TotalRemaining().BTCString())

	return b.String()
}

// SaleMarkdown renders a single sale record with its per-lot breakdown,
// used for sale previews.
func SaleMarkdown(sale *sovereigntax.SaleRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sale Preview (%s)\n\n", sale.Method)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Date | %s |\n", fmtDate(sale.SaleDate))
	fmt.Fprintf(&b, "| Quantity | %s BTC |\n", sale.Quantity.BTCString())
	fmt.Fprintf(&b, "| Price | %s |\n", sale.Price)
	fmt.Fprintf(&b, "| Proceeds | %s |\n", sale.Proceeds)
	fmt.Fprintf(&b, "| Cost basis | %s |\n", sale.CostBasis)
	fmt.Fprintf(&b, "| Gain/loss | %s |\n", sale.GainLoss.SignedString())
	if sale.IsMixedTerm {
		fmt.Fprintf(&b, "| Term | mixed (see lots) |\n")
	} else {
		fmt.Fprintf(&b, "| Term | %s |\n", term(sale.IsLongTerm))
	}
	fmt.Fprintf(&b, "| Avg holding | %d days |\n\n", sale.HoldingDays)

	fmt.Fprint(&b, "## Lots Consumed\n\n")
	fmt.Fprintln(&b, "| Purchased | Quantity (BTC) | Cost/BTC | Cost | Held (days) | Term | Wallet |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---|:---|")
	for _, d := range sale.LotDetails {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s | %s |\n",
			fmtDate(d.PurchaseDate),
			d.Quantity.BTCString(),
			d.CostPerUnit,
			d.Cost,
			d.DaysHeld,
			term(d.IsLongTerm),
			d.Wallet,
		)
	}

	return b.String()
}
